package jsonstate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bnema/thinkday/internal/domain"
	"github.com/bnema/thinkday/internal/ports"
)

const (
	// Millisecond timestamps match what browsers write; finer values keep
	// their full precision.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
	dateLayout      = "2006-01-02"
	indent          = "  "

	backupFilePrefix = "think-day-sanctuary-backup-"
)

// BackupFileName names an export taken at now.
func BackupFileName(now time.Time) string {
	return backupFilePrefix + now.UTC().Format(dateLayout) + ".json"
}

// Codec encodes AppState as indented JSON.
type Codec struct{}

var _ ports.StateCodec = Codec{}

func (Codec) Encode(state domain.AppState) ([]byte, error) {
	file := toSchema(state)
	file.applyDefaults()

	data, err := json.MarshalIndent(file, "", indent)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses a backup. Every failure wraps domain.ErrInvalidBackup.
func (Codec) Decode(data []byte) (domain.AppState, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return domain.AppState{}, fmt.Errorf("%w: expected a JSON object", domain.ErrInvalidBackup)
	}

	var file stateSchema
	if err := json.Unmarshal(trimmed, &file); err != nil {
		return domain.AppState{}, fmt.Errorf("%w: %w", domain.ErrInvalidBackup, err)
	}
	file.applyDefaults()
	if err := file.validateVersion(); err != nil {
		return domain.AppState{}, fmt.Errorf("%w: %w %w", domain.ErrInvalidBackup, domain.ErrUnsupportedVersion, err)
	}

	state, err := fromSchema(file)
	if err != nil {
		return domain.AppState{}, fmt.Errorf("%w: %w", domain.ErrInvalidBackup, err)
	}
	return state, nil
}

func toSchema(state domain.AppState) stateSchema {
	file := stateSchema{
		Version:         currentSchemaVersion,
		Settings:        &settingsSchema{WheelCategories: state.Settings.WheelCategories, JournalPrompts: state.Settings.JournalPrompts},
		IsGuidedSession: state.IsGuidedSession,
		CurrentStep:     int(state.CurrentStep),
	}
	if state.CurrentSession != nil {
		current := toSessionSchema(*state.CurrentSession)
		file.CurrentSession = &current
	}
	if state.CompletedSessions != nil {
		file.CompletedSessions = make([]sessionSchema, 0, len(state.CompletedSessions))
		for _, session := range state.CompletedSessions {
			file.CompletedSessions = append(file.CompletedSessions, toSessionSchema(session))
		}
	}
	return file
}

func fromSchema(file stateSchema) (domain.AppState, error) {
	step := domain.Step(file.CurrentStep)
	if !step.Valid() {
		return domain.AppState{}, fmt.Errorf("current step %d out of range", file.CurrentStep)
	}

	state := domain.AppState{
		IsGuidedSession: file.IsGuidedSession,
		CurrentStep:     step,
	}
	if file.Settings == nil {
		state.Settings = domain.DefaultSettings()
	} else {
		state.Settings = domain.Settings{
			WheelCategories: file.Settings.WheelCategories,
			JournalPrompts:  file.Settings.JournalPrompts,
		}
	}

	if file.CurrentSession != nil {
		current, err := fromSessionSchema(*file.CurrentSession)
		if err != nil {
			return domain.AppState{}, fmt.Errorf("current session: %w", err)
		}
		state.CurrentSession = &current
	}
	if file.CompletedSessions != nil {
		state.CompletedSessions = make([]domain.Session, 0, len(file.CompletedSessions))
		for i, raw := range file.CompletedSessions {
			session, err := fromSessionSchema(raw)
			if err != nil {
				return domain.AppState{}, fmt.Errorf("completed session %d: %w", i, err)
			}
			state.CompletedSessions = append(state.CompletedSessions, session)
		}
	}

	return state, nil
}

func toSessionSchema(session domain.Session) sessionSchema {
	out := sessionSchema{
		ID:            string(session.ID),
		Date:          formatTime(session.Date),
		ActionSteps:   session.ActionSteps,
		IsComplete:    session.IsComplete,
		SessionRating: session.SessionRating,
		KeyInsights:   session.KeyInsights,
	}
	if session.ReviewDate != nil {
		out.ReviewDate = formatTime(*session.ReviewDate)
	}
	if wheel := session.WheelOfLife; wheel != nil {
		out.WheelOfLife = &wheelOfLifeSchema{
			Categories:   wheel.Categories,
			Scores:       wheel.Scores,
			Satisfaction: wheel.Satisfaction,
			Notes:        wheel.Notes,
		}
	}
	if fear := session.FearSetting; fear != nil {
		out.FearSetting = &fearSettingSchema{
			Catalyst: fear.Catalyst,
			Benefits: fear.Benefits,
			Costs: costsSchema{
				SixMonths:  fear.Costs.SixMonths,
				OneYear:    fear.Costs.OneYear,
				ThreeYears: fear.Costs.ThreeYears,
			},
		}
		if fear.Fears != nil {
			out.FearSetting.Fears = make([]fearSchema, 0, len(fear.Fears))
			for _, f := range fear.Fears {
				out.FearSetting.Fears = append(out.FearSetting.Fears, fearSchema(f))
			}
		}
	}
	if session.JournalEntries != nil {
		out.JournalEntries = make([]journalEntrySchema, 0, len(session.JournalEntries))
		for _, entry := range session.JournalEntries {
			out.JournalEntries = append(out.JournalEntries, journalEntrySchema{
				Prompt:   entry.Prompt,
				Response: entry.Response,
				Priority: entry.Priority,
				Category: string(entry.Category),
			})
		}
	}
	return out
}

func fromSessionSchema(raw sessionSchema) (domain.Session, error) {
	date, err := parseTime(raw.Date)
	if err != nil {
		return domain.Session{}, fmt.Errorf("date: %w", err)
	}

	session := domain.Session{
		ID:            domain.SessionID(raw.ID),
		Date:          date,
		ActionSteps:   raw.ActionSteps,
		IsComplete:    raw.IsComplete,
		SessionRating: raw.SessionRating,
	}
	if len(raw.KeyInsights) > 0 {
		session.KeyInsights = raw.KeyInsights
	}
	if raw.ReviewDate != "" {
		reviewDate, err := parseTime(raw.ReviewDate)
		if err != nil {
			return domain.Session{}, fmt.Errorf("review date: %w", err)
		}
		session.ReviewDate = &reviewDate
	}
	if wheel := raw.WheelOfLife; wheel != nil {
		session.WheelOfLife = &domain.WheelOfLife{
			Categories:   wheel.Categories,
			Scores:       wheel.Scores,
			Satisfaction: wheel.Satisfaction,
			Notes:        wheel.Notes,
		}
	}
	if fear := raw.FearSetting; fear != nil {
		session.FearSetting = &domain.FearSetting{
			Catalyst: fear.Catalyst,
			Benefits: fear.Benefits,
			Costs: domain.Costs{
				SixMonths:  fear.Costs.SixMonths,
				OneYear:    fear.Costs.OneYear,
				ThreeYears: fear.Costs.ThreeYears,
			},
		}
		if fear.Fears != nil {
			session.FearSetting.Fears = make([]domain.Fear, 0, len(fear.Fears))
			for _, f := range fear.Fears {
				session.FearSetting.Fears = append(session.FearSetting.Fears, domain.Fear(f))
			}
		}
	}
	if raw.JournalEntries != nil {
		session.JournalEntries = make([]domain.JournalEntry, 0, len(raw.JournalEntries))
		for _, entry := range raw.JournalEntries {
			category := domain.JournalCategory(entry.Category)
			if !category.Valid() {
				return domain.Session{}, fmt.Errorf("journal entry %q: unsupported category %q", entry.Prompt, entry.Category)
			}
			session.JournalEntries = append(session.JournalEntries, domain.JournalEntry{
				Prompt:   entry.Prompt,
				Response: entry.Response,
				Priority: entry.Priority,
				Category: category,
			})
		}
	}
	return session, nil
}

func parseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return parsed.UTC(), nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
	}
	return parsed.UTC(), nil
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	value = value.UTC()
	if value.Nanosecond()%int(time.Millisecond) != 0 {
		return value.Format(time.RFC3339Nano)
	}
	return value.Format(timestampLayout)
}
