package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bnema/thinkday/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	currentSchemaVersion = 1
	contentFileMode      = 0o600
	contentDirMode       = 0o700
)

type contentSchema struct {
	Version         int      `toml:"version"`
	WheelCategories []string `toml:"wheel_categories"`
	JournalPrompts  []string `toml:"journal_prompts"`
}

func (s *contentSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	defaults := domain.DefaultSettings()
	if len(s.WheelCategories) == 0 {
		s.WheelCategories = defaults.WheelCategories
	}
	if s.JournalPrompts == nil {
		s.JournalPrompts = defaults.JournalPrompts
	}
}

func (s contentSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("%w: content version %d (current %d)", domain.ErrUnsupportedVersion, s.Version, currentSchemaVersion)
	}
	return nil
}

// Load reads the wheel categories and journal prompts used to seed a fresh
// state. An empty path or a missing file yields the built-in content; keys
// absent from the file fall back to it individually.
func Load(path string) (domain.Settings, error) {
	if path == "" {
		return domain.DefaultSettings(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, fmt.Errorf("read content file: %w", err)
	}

	var file contentSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, fmt.Errorf("decode content file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Settings{}, err
	}
	file.applyDefaults()

	categories, err := normalize(file.WheelCategories)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("wheel_categories: %w", err)
	}
	prompts, err := normalize(file.JournalPrompts)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("journal_prompts: %w", err)
	}

	return domain.Settings{WheelCategories: categories, JournalPrompts: prompts}, nil
}

// Write stores settings as a content file, replacing any existing one.
func Write(path string, settings domain.Settings) error {
	file := contentSchema{
		WheelCategories: slices.Clone(settings.WheelCategories),
		JournalPrompts:  slices.Clone(settings.JournalPrompts),
	}
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode content file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), contentDirMode); err != nil {
		return fmt.Errorf("create content directory: %w", err)
	}
	if err := os.WriteFile(path, data, contentFileMode); err != nil {
		return fmt.Errorf("write content file: %w", err)
	}
	return nil
}

func normalize(values []string) ([]string, error) {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, domain.ErrEmptyValue
		}
		if slices.Contains(normalized, value) {
			return nil, fmt.Errorf("duplicate entry %q", value)
		}
		normalized = append(normalized, value)
	}
	return normalized, nil
}
