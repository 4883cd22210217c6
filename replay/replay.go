// Package replay drives an emitter from a yaml script of events and payloads.
package replay

import (
	"fmt"
	"io"

	"github.com/cloudfoundry-incubator/candiedyaml"
	"github.com/spf13/afero"

	"github.com/compozed/eventemitter"
	"github.com/compozed/eventemitter/config"
	I "github.com/compozed/eventemitter/interfaces"
	"github.com/compozed/eventemitter/logger"
)

type Step struct {
	Event   string
	Payload []interface{} `yaml:",flow"`
}

type script struct {
	Steps []Step `yaml:",flow"`
}

// Replayer registers printing listeners for the configured events and emits the script steps in order.
type Replayer struct {
	Config     config.Config
	FileSystem *afero.Afero

	// Log may be nil, in which case nothing is logged.
	Log I.Logger

	// ContinueOnError keeps emitting after a failed step and returns all failures as StepErrors.
	ContinueOnError bool

	// Hooks receives StepFinishedEvent. Optional.
	Hooks *eventemitter.Emitter[string]
}

// Run replays scriptFilename, writing one line per listener invocation to out.
func (r *Replayer) Run(scriptFilename string, out io.Writer) error {
	if r.Log == nil {
		r.Log = logger.Discard
	}

	steps, err := r.load(scriptFilename)
	if err != nil {
		return err
	}

	emitter := r.emitter(out)

	r.Log.Infof("replaying %d steps from %s", len(steps), scriptFilename)

	var failed StepErrors
	for i, step := range steps {
		err := emitter.Emit(step.Event, step.Payload...)
		if hookErr := r.finished(StepResult{Index: i, Event: step.Event, Payload: step.Payload, Err: err}); hookErr != nil {
			return hookErr
		}
		if err == nil {
			continue
		}

		r.Log.Errorf("step %d (%s) failed: %s", i, step.Event, err)
		stepErr := StepError{Index: i, Event: step.Event, Err: err}
		if !r.ContinueOnError {
			return stepErr
		}
		failed = append(failed, stepErr)
	}

	if len(failed) > 0 {
		return failed
	}

	r.Log.Infof("replay of %s finished", scriptFilename)
	return nil
}

func (r *Replayer) load(filename string) ([]Step, error) {
	data, err := r.FileSystem.ReadFile(filename)
	if err != nil {
		return nil, ReadScriptError{filename, err}
	}

	var s script
	if err := candiedyaml.Unmarshal(data, &s); err != nil {
		return nil, ParseScriptError{filename, err}
	}

	for i, step := range s.Steps {
		if step.Event == "" {
			return nil, MissingEventError{i}
		}
	}

	return s.Steps, nil
}

func (r *Replayer) emitter(out io.Writer) *eventemitter.Emitter[string] {
	emitter := eventemitter.New[string](r.Log)

	for _, event := range r.Config.Events {
		if event.Listeners <= 0 {
			emitter.Register(event.Name, nil)
			continue
		}
		for n := 1; n <= event.Listeners; n++ {
			emitter.Register(event.Name, printer(out, event.Name, n))
		}
	}

	return emitter
}

func (r *Replayer) finished(result StepResult) error {
	if r.Hooks == nil || !r.Hooks.IsRegistered(StepFinishedEvent.Name) {
		return nil
	}
	return eventemitter.Fire(r.Hooks, StepFinishedEvent, result)
}

func printer(out io.Writer, eventName string, n int) eventemitter.Listener {
	return func(payload ...interface{}) error {
		_, err := fmt.Fprintf(out, "%s listener %d: %v\n", eventName, n, payload)
		return err
	}
}
