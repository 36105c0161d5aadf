// Package models defines the domain entities shared across DeenLife
// features. Every type here is JSON-serializable and persisted through
// the store package.
package models

// Habit is a recurring practice the user tracks day by day.
type Habit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	// CompletedDates holds local calendar dates (YYYY-MM-DD), never
	// timestamps. Completions recorded near midnight must land on the
	// user's local day.
	CompletedDates []string `json:"completedDates"`
	TargetPerWeek  int      `json:"targetPerWeek"`
}

// CompletedOn reports whether the habit was completed on the given
// calendar date (YYYY-MM-DD).
func (h Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedDates {
		if d == date {
			return true
		}
	}
	return false
}
