package logger

import I "github.com/compozed/eventemitter/interfaces"

// Discard drops every message.
var Discard I.Logger = discard{}

type discard struct{}

func (discard) Error(...interface{}) {}
func (discard) Errorf(string, ...interface{}) {}
func (discard) Debug(...interface{}) {}
func (discard) Debugf(string, ...interface{}) {}
func (discard) Info(...interface{}) {}
func (discard) Infof(string, ...interface{}) {}
func (discard) Fatal(...interface{}) {}
