package mocks

import "github.com/stretchr/testify/mock"

// Listener records every invocation. Pass Listener.Listen to Register.
type Listener struct {
	mock.Mock
}

// Listen mock method.
func (l *Listener) Listen(payload ...interface{}) error {
	args := l.Called(payload...)
	return args.Error(0)
}
