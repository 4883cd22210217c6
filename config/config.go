// Package config holds the replay tool configuration aggregated from environment variables and the config yaml file.
package config

import (
	"strings"

	"github.com/cloudfoundry-incubator/candiedyaml"
	"github.com/go-errors/errors"
	"github.com/op/go-logging"
	"github.com/spf13/afero"

	"github.com/compozed/eventemitter/logger"
)

const (
	defaultModule        = "eventemitter"
	cannotReadConfigFile = "cannot read config file"
	cannotParseYamlFile  = "cannot parse yaml file"
	duplicateEvent       = "event declared more than once"
	missingEventName     = "event declared without a name"
)

type Config struct {
	LogLevel logging.Level
	Module   string
	Events   []Event
}

// Event declares an event name and how many listeners the replay tool registers for it.
// A declared event with zero listeners is still registered.
type Event struct {
	Name      string
	Listeners int
}

type configYaml struct {
	Events []Event `yaml:",flow"`
}

// New returns a Config built from environment variables and the config file found on fs.
func New(getenv func(string) string, configFilename string, fs afero.Fs) (Config, error) {
	level, err := logger.ParseLevel(getenv("EMITTER_LOGLEVEL"))
	if err != nil {
		return Config{}, errors.New(err)
	}

	module := getenv("EMITTER_MODULE")
	if module == "" {
		module = defaultModule
	}

	events, err := getEventsFromFile(fs, configFilename)
	if err != nil {
		return Config{}, err
	}

	return Config{
		LogLevel: level,
		Module:   module,
		Events:   events,
	}, nil
}

func getEventsFromFile(fs afero.Fs, filename string) ([]Event, error) {
	file, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, errors.Errorf("%s: %s", cannotReadConfigFile, err)
	}

	var parsed configYaml
	if err := candiedyaml.Unmarshal(file, &parsed); err != nil {
		return nil, errors.Errorf("%s: %s", cannotParseYamlFile, err)
	}

	seen := map[string]bool{}
	for i, event := range parsed.Events {
		name := strings.TrimSpace(event.Name)
		parsed.Events[i].Name = name
		if name == "" {
			return nil, errors.New(missingEventName)
		}
		if seen[name] {
			return nil, errors.Errorf("%s: %s", duplicateEvent, name)
		}
		seen[name] = true
	}

	return parsed.Events, nil
}
