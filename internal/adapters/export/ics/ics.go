package ics

import (
	"strings"
	"time"

	"github.com/bnema/thinkday/internal/domain"
)

const (
	FileName = "think_day_review.ics"

	eventSummary = "Review Think Day Action Plan"
	productID    = "-//Think Day Sanctuary//Review Reminder//EN"
	dateLayout   = "20060102"
	stampLayout  = "20060102T150405Z"
)

// Reminder builds an all-day calendar event on the review date of session.
// now stamps the event.
func Reminder(id domain.SessionID, reviewDate, now time.Time) []byte {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + productID,
		"BEGIN:VEVENT",
		"UID:" + string(id) + "-review@thinkday",
		"DTSTAMP:" + now.UTC().Format(stampLayout),
		"DTSTART;VALUE=DATE:" + reviewDate.UTC().Format(dateLayout),
		"SUMMARY:" + eventSummary,
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return []byte(strings.Join(lines, "\r\n") + "\r\n")
}
