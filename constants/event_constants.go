package constants

const (
	StepFinishedEvent = "step.finished"
)
