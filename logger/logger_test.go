package logger_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/op/go-logging"

	. "github.com/compozed/eventemitter/logger"
)

var _ = Describe("Logger", func() {
	Describe("DefaultLogger", func() {
		It("writes messages at or above the level", func() {
			buffer := gbytes.NewBuffer()
			log := DefaultLogger(buffer, logging.INFO, "logger_test")

			log.Debug("hidden message")
			log.Info("visible message")

			Eventually(buffer).Should(gbytes.Say("visible message"))
			Expect(string(buffer.Contents())).ToNot(ContainSubstring("hidden message"))
		})
	})

	Describe("ParseLevel", func() {
		It("defaults to DEBUG", func() {
			Expect(ParseLevel("")).To(Equal(logging.DEBUG))
		})

		It("parses level names", func() {
			Expect(ParseLevel("ERROR")).To(Equal(logging.ERROR))
		})

		It("returns an error for an unknown level", func() {
			_, err := ParseLevel("LOUD")
			Expect(err).To(MatchError(ContainSubstring("unable to get log level: LOUD")))
		})
	})
})
