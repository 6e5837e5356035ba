package domain

import "slices"

var defaultWheelCategories = []string{
	"Mission", "Family", "Friends", "Romance", "Spiritual",
	"Mental", "Physical", "Growth", "Money", "Joy",
}

var defaultJournalPrompts = []string{
	"What would I do if money were no object?",
	"If I didn't care about making money, how would I use my talents and skills to serve other people?",
	"What would I like people to say at my funeral? And to what extent am I currently living aligned with that future?",
	"If I repeated this week's actions for the next ten years, where would that lead me? And is that where I want to be?",
	"What activities in the last month have energised me, and what activities in the last month have drained me? How can I do more of what energises me and less of what has drained me?",
	"When it comes to my work or my life, what is the goal and what is the primary bottleneck?",
	"Do I work for my business or does my business work for me?",
	"If I knew I was going to die two years from now, how would I spend my time?",
	"What's the biggest bottleneck to achieving my next goal, and why am I not addressing it more directly?",
	"How much do my current goals reflect my own desires versus someone else's expectations?",
	"What are some areas in which I could invest more money to make life smoother and easier for myself?",
	"What could I do to make my life more meaningful?",
	"What do I wish I could do more quickly? And what do I wish I could do more slowly?",
	"What backpack am I carrying that no longer serves me?",
}

// DefaultSettings returns a fresh copy of the built-in content.
func DefaultSettings() Settings {
	return Settings{
		WheelCategories: slices.Clone(defaultWheelCategories),
		JournalPrompts:  slices.Clone(defaultJournalPrompts),
	}
}

// DefaultWheelScore is the slider position for categories not rated yet.
const DefaultWheelScore = 5

// ReviewInterval is the default delay, in days, before the next review.
const ReviewInterval = 30

// ActionPlanTemplate seeds the action steps editor.
const ActionPlanTemplate = "Before today I was...\n\nBut as of today I decided that...\n\nAction points:\n1. \n2. \n3. \n\nI will review this on..."
