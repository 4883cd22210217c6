package mocks

import "fmt"

// Logger handmade mock for tests.
type Logger struct {
	DebugfCall struct {
		Received struct {
			Messages []string
		}
	}
	ErrorfCall struct {
		Received struct {
			Messages []string
		}
	}
}

func (l *Logger) Error(args ...interface{}) {
	l.ErrorfCall.Received.Messages = append(l.ErrorfCall.Received.Messages, fmt.Sprint(args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.ErrorfCall.Received.Messages = append(l.ErrorfCall.Received.Messages, fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(args ...interface{}) {
	l.DebugfCall.Received.Messages = append(l.DebugfCall.Received.Messages, fmt.Sprint(args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.DebugfCall.Received.Messages = append(l.DebugfCall.Received.Messages, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(...interface{}) {}
func (l *Logger) Infof(string, ...interface{}) {}
func (l *Logger) Fatal(...interface{}) {}
