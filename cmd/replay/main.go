package main

import (
	"flag"
	"log"
	"os"

	"github.com/spf13/afero"

	"github.com/compozed/eventemitter"
	"github.com/compozed/eventemitter/config"
	I "github.com/compozed/eventemitter/interfaces"
	"github.com/compozed/eventemitter/logger"
	"github.com/compozed/eventemitter/replay"
)

const defaultConfig = "./config.yml"

func main() {
	configFile := flag.String("config", defaultConfig, "location of the config file")
	scriptFile := flag.String("script", "", "location of the script to replay")
	continueOnError := flag.Bool("continue", false, "keep replaying after a step fails (default: false)")
	flag.Parse()

	if *scriptFile == "" {
		log.Fatal("-script is required")
	}

	fs := afero.NewOsFs()

	c, err := config.New(os.Getenv, *configFile, fs)
	if err != nil {
		log.Fatal(err)
	}

	l := logger.DefaultLogger(os.Stderr, c.LogLevel, c.Module)
	l.Infof("log level : %s", c.LogLevel)

	var succeeded, failed int
	hooks := eventemitter.New[string](l)
	eventemitter.On(hooks, replay.StepFinishedEvent, func(result replay.StepResult) error {
		if result.Err != nil {
			failed++
		} else {
			succeeded++
		}
		return nil
	})

	var r I.Replayer = &replay.Replayer{
		Config:          c,
		FileSystem:      &afero.Afero{Fs: fs},
		Log:             l,
		ContinueOnError: *continueOnError,
		Hooks:           hooks,
	}

	err = r.Run(*scriptFile, os.Stdout)
	l.Infof("%d steps succeeded, %d failed", succeeded, failed)
	if err != nil {
		l.Fatal(err)
	}
}
