package domain

import (
	"regexp"
	"strings"
)

const NoActionStepsRecorded = "No action steps recorded"

var actionItemPattern = regexp.MustCompile(`^(\d+\.|-|\*)\s`)

// ActionItems returns the numbered or bulleted lines of an action plan, trimmed.
func ActionItems(actionSteps string) []string {
	items := make([]string, 0)
	for _, line := range strings.Split(actionSteps, "\n") {
		trimmed := strings.TrimSpace(line)
		if actionItemPattern.MatchString(trimmed) {
			items = append(items, trimmed)
		}
	}
	return items
}

// FirstActionStep returns the first non-blank line of an action plan.
func FirstActionStep(actionSteps string) string {
	for _, line := range strings.Split(actionSteps, "\n") {
		if strings.TrimSpace(line) != "" {
			return line
		}
	}
	return NoActionStepsRecorded
}
