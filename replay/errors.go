package replay

import (
	"fmt"
	"strings"
)

type ReadScriptError struct {
	Filename string
	Err      error
}

func (e ReadScriptError) Error() string {
	return fmt.Sprintf("cannot read script %s: %s", e.Filename, e.Err)
}

type ParseScriptError struct {
	Filename string
	Err      error
}

func (e ParseScriptError) Error() string {
	return fmt.Sprintf("cannot parse script %s: %s", e.Filename, e.Err)
}

type MissingEventError struct {
	Index int
}

func (e MissingEventError) Error() string {
	return fmt.Sprintf("step %d has no event", e.Index)
}

type StepError struct {
	Index int
	Event string
	Err   error
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (%s) failed: %s", e.Index, e.Event, e.Err)
}

func (e StepError) Unwrap() error {
	return e.Err
}

type StepErrors []StepError

func (e StepErrors) Error() string {
	messages := make([]string, len(e))
	for i, err := range e {
		messages[i] = err.Error()
	}
	return fmt.Sprintf("%d steps failed: %s", len(e), strings.Join(messages, "; "))
}
