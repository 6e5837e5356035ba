package application

import (
	"time"

	"github.com/bnema/thinkday/internal/domain"
)

type ActionKind string

const (
	KindStartNewSession    ActionKind = "START_NEW_SESSION"
	KindStartGuidedSession ActionKind = "START_GUIDED_SESSION"
	KindNextStep           ActionKind = "NEXT_STEP"
	KindPrevStep           ActionKind = "PREV_STEP"
	KindUpdateWheelOfLife  ActionKind = "UPDATE_WHEEL_OF_LIFE"
	KindUpdateFearSetting  ActionKind = "UPDATE_FEAR_SETTING"
	KindAddJournalEntry    ActionKind = "ADD_JOURNAL_ENTRY"
	KindUpdateActionSteps  ActionKind = "UPDATE_ACTION_STEPS"
	KindSetReviewDate      ActionKind = "SET_REVIEW_DATE"
	KindRateSession        ActionKind = "RATE_SESSION"
	KindCompleteSession    ActionKind = "COMPLETE_SESSION"
	KindEndSession         ActionKind = "END_SESSION"
	KindUpdateSettings     ActionKind = "UPDATE_SETTINGS"
	KindLoadState          ActionKind = "LOAD_STATE"
)

// Action is the closed set of state transitions accepted by Reduce.
type Action interface {
	Kind() ActionKind
	action()
}

// StartNewSession carries the id and timestamp so Reduce stays deterministic.
type StartNewSession struct {
	ID        domain.SessionID
	StartedAt time.Time
}

type StartGuidedSession struct {
	ID        domain.SessionID
	StartedAt time.Time
}

type NextStep struct{}

type PrevStep struct{}

type UpdateWheelOfLife struct {
	WheelOfLife domain.WheelOfLife
}

type UpdateFearSetting struct {
	Patch FearSettingPatch
}

type AddJournalEntry struct {
	Entry domain.JournalEntry
}

type UpdateActionSteps struct {
	ActionSteps string
}

type SetReviewDate struct {
	ReviewDate time.Time
}

type RateSession struct {
	Rating int
}

type CompleteSession struct{}

type EndSession struct{}

type UpdateSettings struct {
	Patch SettingsPatch
}

type LoadState struct {
	State domain.AppState
}

// FearSettingPatch sets only the non-nil fields.
type FearSettingPatch struct {
	Catalyst *string
	Fears    *[]domain.Fear
	Benefits *string
	Costs    *domain.Costs
}

func (p FearSettingPatch) WithCatalyst(catalyst string) FearSettingPatch {
	p.Catalyst = &catalyst
	return p
}

func (p FearSettingPatch) WithFears(fears []domain.Fear) FearSettingPatch {
	p.Fears = &fears
	return p
}

func (p FearSettingPatch) WithBenefits(benefits string) FearSettingPatch {
	p.Benefits = &benefits
	return p
}

func (p FearSettingPatch) WithCosts(costs domain.Costs) FearSettingPatch {
	p.Costs = &costs
	return p
}

func (p FearSettingPatch) apply(base domain.FearSetting) domain.FearSetting {
	if p.Catalyst != nil {
		base.Catalyst = *p.Catalyst
	}
	if p.Fears != nil {
		base.Fears = cloneFears(*p.Fears)
	}
	if p.Benefits != nil {
		base.Benefits = *p.Benefits
	}
	if p.Costs != nil {
		base.Costs = *p.Costs
	}
	return base
}

// SettingsPatch sets only the non-nil fields.
type SettingsPatch struct {
	WheelCategories *[]string
	JournalPrompts  *[]string
}

func (p SettingsPatch) WithWheelCategories(categories []string) SettingsPatch {
	p.WheelCategories = &categories
	return p
}

func (p SettingsPatch) WithJournalPrompts(prompts []string) SettingsPatch {
	p.JournalPrompts = &prompts
	return p
}

func (p SettingsPatch) apply(base domain.Settings) domain.Settings {
	if p.WheelCategories != nil {
		base.WheelCategories = cloneStrings(*p.WheelCategories)
	}
	if p.JournalPrompts != nil {
		base.JournalPrompts = cloneStrings(*p.JournalPrompts)
	}
	return base
}

func (StartNewSession) Kind() ActionKind    { return KindStartNewSession }
func (StartGuidedSession) Kind() ActionKind { return KindStartGuidedSession }
func (NextStep) Kind() ActionKind           { return KindNextStep }
func (PrevStep) Kind() ActionKind           { return KindPrevStep }
func (UpdateWheelOfLife) Kind() ActionKind  { return KindUpdateWheelOfLife }
func (UpdateFearSetting) Kind() ActionKind  { return KindUpdateFearSetting }
func (AddJournalEntry) Kind() ActionKind    { return KindAddJournalEntry }
func (UpdateActionSteps) Kind() ActionKind  { return KindUpdateActionSteps }
func (SetReviewDate) Kind() ActionKind      { return KindSetReviewDate }
func (RateSession) Kind() ActionKind        { return KindRateSession }
func (CompleteSession) Kind() ActionKind    { return KindCompleteSession }
func (EndSession) Kind() ActionKind         { return KindEndSession }
func (UpdateSettings) Kind() ActionKind     { return KindUpdateSettings }
func (LoadState) Kind() ActionKind          { return KindLoadState }

func (StartNewSession) action()    {}
func (StartGuidedSession) action() {}
func (NextStep) action()           {}
func (PrevStep) action()           {}
func (UpdateWheelOfLife) action()  {}
func (UpdateFearSetting) action()  {}
func (AddJournalEntry) action()    {}
func (UpdateActionSteps) action()  {}
func (SetReviewDate) action()      {}
func (RateSession) action()        {}
func (CompleteSession) action()    {}
func (EndSession) action()         {}
func (UpdateSettings) action()     {}
func (LoadState) action()          {}
