package progress

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitpulse/pkg/entity"
)

// IsCompleted reports whether habitID was completed on the calendar day of date.
// Duplicate records for the same day resolve to the last one in the slice.
func IsCompleted(habitID uuid.UUID, date time.Time, completions []entity.HabitCompletion) bool {
	day := dayNumber(date)
	found, completed := false, false
	for _, c := range completions {
		if c.HabitID == habitID && dayNumber(c.Date) == day {
			found = true
			completed = c.Completed
		}
	}
	return found && completed
}

type recordKey struct {
	habitID uuid.UUID
	day     int64
}

// Index is a lookup table over the authoritative record of every (habit, day).
type Index struct {
	records map[recordKey]bool
	// position of the authoritative record in the source slice
	order map[recordKey]int
}

func NewIndex(completions []entity.HabitCompletion) *Index {
	idx := &Index{
		records: make(map[recordKey]bool, len(completions)),
		order:   make(map[recordKey]int, len(completions)),
	}
	for i, c := range completions {
		k := recordKey{habitID: c.HabitID, day: dayNumber(c.Date)}
		idx.records[k] = c.Completed
		idx.order[k] = i
	}
	return idx
}

func (idx *Index) Completed(habitID uuid.UUID, date time.Time) bool {
	return idx.records[recordKey{habitID: habitID, day: dayNumber(date)}]
}

// CountInRange counts completed days of habitID within [from, to], both inclusive.
func (idx *Index) CountInRange(habitID uuid.UUID, from, to time.Time) int {
	count := 0
	for d := Day(from); !d.After(Day(to)); d = d.AddDate(0, 0, 1) {
		if idx.Completed(habitID, d) {
			count++
		}
	}
	return count
}

// Len is the number of distinct (habit, day) records.
func (idx *Index) Len() int {
	return len(idx.records)
}

// authoritative returns the deduplicated records in source order.
func (idx *Index) authoritative(completions []entity.HabitCompletion) []entity.HabitCompletion {
	result := make([]entity.HabitCompletion, 0, len(idx.order))
	for i, c := range completions {
		if idx.order[recordKey{habitID: c.HabitID, day: dayNumber(c.Date)}] == i {
			result = append(result, c)
		}
	}
	return result
}
