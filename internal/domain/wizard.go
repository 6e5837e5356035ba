package domain

// Step is the wizard cursor of a guided session.
type Step int

const (
	StepWheelOfLife Step = iota
	StepFearSetting
	StepJournaling
	StepActionSteps
	StepSessionSummary
)

const (
	FirstStep = StepWheelOfLife
	LastStep  = StepSessionSummary
	StepCount = int(LastStep) + 1
)

var stepNames = [StepCount]string{
	"Wheel of Life",
	"Fear Setting",
	"Journaling",
	"Action Steps",
	"Session Summary",
}

func (s Step) Valid() bool {
	return s >= FirstStep && s <= LastStep
}

func (s Step) Name() string {
	if !s.Valid() {
		return ""
	}
	return stepNames[s]
}

// Progress is the completed fraction in (0, 1] once the step is shown.
func (s Step) Progress() float64 {
	if !s.Valid() {
		return 0
	}
	return float64(s+1) / float64(StepCount)
}

func (s Step) IsFirst() bool { return s == FirstStep }

func (s Step) IsLast() bool { return s == LastStep }
