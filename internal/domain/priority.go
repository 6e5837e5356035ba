package domain

// Quadrant of the impact/effort matrix.
type Quadrant string

const (
	QuadrantQuickWin     Quadrant = "quick-win"
	QuadrantMajorProject Quadrant = "major-project"
	QuadrantFillIn       Quadrant = "fill-in"
	QuadrantThankless    Quadrant = "thankless"
)

const (
	highImpactThreshold = 7
	lowEffortThreshold  = 4
)

func CalculatePriority(impact, effort int) Quadrant {
	highImpact := impact >= highImpactThreshold
	lowEffort := effort <= lowEffortThreshold

	switch {
	case highImpact && lowEffort:
		return QuadrantQuickWin
	case highImpact:
		return QuadrantMajorProject
	case lowEffort:
		return QuadrantFillIn
	default:
		return QuadrantThankless
	}
}

func (q Quadrant) Label() string {
	switch q {
	case QuadrantQuickWin:
		return "Quick win"
	case QuadrantMajorProject:
		return "Major project"
	case QuadrantFillIn:
		return "Fill-in"
	case QuadrantThankless:
		return "Thankless task"
	default:
		return string(q)
	}
}
