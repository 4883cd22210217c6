package replay

import (
	"github.com/compozed/eventemitter"
	"github.com/compozed/eventemitter/constants"
)

// StepResult is the payload of StepFinishedEvent. Err is nil when every listener succeeded.
type StepResult struct {
	Index   int
	Event   string
	Payload []interface{}
	Err     error
}

// StepFinishedEvent is fired on Replayer.Hooks after every step, when something listens for it.
var StepFinishedEvent = eventemitter.NewEvent[StepResult](constants.StepFinishedEvent)
