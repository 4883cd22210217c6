package config_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/op/go-logging"
	"github.com/spf13/afero"

	. "github.com/compozed/eventemitter/config"
	"github.com/compozed/eventemitter/randomizer"
)

const (
	configPath = "/etc/emitter/config.yml"
	testConfig = `---
events:
- name: mouseClick
  listeners: 3
- name: keyPress
  listeners: 1
- name: hover
`
)

var _ = Describe("Config", func() {
	var (
		fs     afero.Fs
		envMap map[string]string
		getenv func(string) string
	)

	BeforeEach(func() {
		fs = afero.NewMemMapFs()
		envMap = map[string]string{}
		getenv = func(key string) string { return envMap[key] }

		Expect(afero.WriteFile(fs, configPath, []byte(testConfig), 0644)).To(Succeed())
	})

	Context("when no environment variables are set", func() {
		It("returns a Config with defaults and the declared events", func() {
			config, err := New(getenv, configPath, fs)
			Expect(err).ToNot(HaveOccurred())

			Expect(config.LogLevel).To(Equal(logging.DEBUG))
			Expect(config.Module).To(Equal("eventemitter"))
			Expect(config.Events).To(Equal([]Event{
				{Name: "mouseClick", Listeners: 3},
				{Name: "keyPress", Listeners: 1},
				{Name: "hover", Listeners: 0},
			}))
		})
	})

	Context("when the environment sets the level and module", func() {
		It("uses them", func() {
			module := "module-" + randomizer.StringRunes(10)
			envMap["EMITTER_LOGLEVEL"] = "WARNING"
			envMap["EMITTER_MODULE"] = module

			config, err := New(getenv, configPath, fs)
			Expect(err).ToNot(HaveOccurred())

			Expect(config.LogLevel).To(Equal(logging.WARNING))
			Expect(config.Module).To(Equal(module))
		})
	})

	Context("when the log level is unknown", func() {
		It("returns an error", func() {
			envMap["EMITTER_LOGLEVEL"] = "LOUD"

			_, err := New(getenv, configPath, fs)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unable to get log level: LOUD"))
		})
	})

	Context("when the config file is missing", func() {
		It("returns an error", func() {
			_, err := New(getenv, "/missing.yml", fs)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("cannot read config file"))
		})
	})

	Context("when the config file is not yaml", func() {
		It("returns an error", func() {
			Expect(afero.WriteFile(fs, configPath, []byte("events: [\n- :"), 0644)).To(Succeed())

			_, err := New(getenv, configPath, fs)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("cannot parse yaml file"))
		})
	})

	Context("when an event is declared twice", func() {
		It("returns an error naming the event", func() {
			Expect(afero.WriteFile(fs, configPath, []byte("events:\n- name: hover\n- name: hover\n"), 0644)).To(Succeed())

			_, err := New(getenv, configPath, fs)
			Expect(err).To(MatchError("event declared more than once: hover"))
		})
	})

	Context("when an event name has surrounding spaces", func() {
		It("stores the trimmed name", func() {
			Expect(afero.WriteFile(fs, configPath, []byte("events:\n- name: ' hover '\n  listeners: 1\n"), 0644)).To(Succeed())

			config, err := New(getenv, configPath, fs)
			Expect(err).ToNot(HaveOccurred())
			Expect(config.Events).To(Equal([]Event{{Name: "hover", Listeners: 1}}))
		})

		It("treats names that differ only in spaces as duplicates", func() {
			Expect(afero.WriteFile(fs, configPath, []byte("events:\n- name: hover\n- name: ' hover'\n"), 0644)).To(Succeed())

			_, err := New(getenv, configPath, fs)
			Expect(err).To(MatchError("event declared more than once: hover"))
		})
	})

	Context("when an event has no name", func() {
		It("returns an error", func() {
			Expect(afero.WriteFile(fs, configPath, []byte("events:\n- listeners: 2\n"), 0644)).To(Succeed())

			_, err := New(getenv, configPath, fs)
			Expect(err).To(MatchError("event declared without a name"))
		})
	})
})
