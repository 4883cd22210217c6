package eventemitter

import (
	"fmt"
	"strings"
)

type UnregisteredEventError struct {
	Name interface{}
}

func (e UnregisteredEventError) Error() string {
	return fmt.Sprintf("%v is not a registered listener", e.Name)
}

type InvalidListenerError struct{}

func (e InvalidListenerError) Error() string {
	return "invalid argument: listener does not exist"
}

type InvalidPayloadError struct {
	Name     interface{}
	Expected string
	Got      []interface{}
}

func (e InvalidPayloadError) Error() string {
	got := make([]string, len(e.Got))
	for i, p := range e.Got {
		got[i] = fmt.Sprintf("%T", p)
	}
	return fmt.Sprintf("invalid payload for %v event: expected (%s), got (%s)", e.Name, e.Expected, strings.Join(got, ", "))
}
