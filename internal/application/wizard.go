package application

import "github.com/bnema/thinkday/internal/domain"

// AdvanceAction resolves the wizard's Next control: on the last step it
// completes the session instead of moving the cursor.
func AdvanceAction(state domain.AppState) Action {
	if state.CurrentStep >= domain.LastStep {
		return CompleteSession{}
	}
	return NextStep{}
}

// RetreatAction resolves the wizard's Previous control: on the first step it
// abandons the session instead of clamping the cursor.
func RetreatAction(state domain.AppState) Action {
	if state.CurrentStep <= domain.FirstStep {
		return EndSession{}
	}
	return PrevStep{}
}
