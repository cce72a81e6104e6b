package progress

import (
	"math"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitpulse/pkg/entity"
)

type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

func ParseTimeframe(s string) (Timeframe, bool) {
	switch tf := Timeframe(s); tf {
	case TimeframeWeek, TimeframeMonth, TimeframeYear:
		return tf, true
	}
	return TimeframeWeek, false
}

type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

const (
	UnknownHabitTitle   = "Unknown Habit"
	recentActivityLimit = 5
	trailingYearDays    = 365
)

type Options struct {
	WeekStart time.Weekday
}

// DefaultOptions starts weeks on Monday, the way ISO weeks do.
var DefaultOptions = Options{WeekStart: time.Monday}

type CategoryCount struct {
	CategoryInfo
	Count int `json:"count"`
}

type Activity struct {
	HabitID    uuid.UUID       `json:"habit_id"`
	HabitTitle string          `json:"habit_title"`
	Category   entity.Category `json:"category"`
	Date       time.Time       `json:"date"`
	Completed  bool            `json:"completed"`
}

type ProgressPoint struct {
	Label          string    `json:"label"`
	Date           time.Time `json:"date"`
	TotalHabits    int       `json:"total_habits"`
	CompletedCount int       `json:"completed_count"`
	RatePercent    int       `json:"rate_percent"`
	IsToday        bool      `json:"is_today"`
}

type Stats struct {
	Timeframe         Timeframe       `json:"timeframe"`
	StartDate         time.Time       `json:"start_date"`
	EndDate           time.Time       `json:"end_date"`
	TotalHabits       int             `json:"total_habits"`
	ActiveHabits      int             `json:"active_habits"`
	CompletionRate    int             `json:"completion_rate"`
	PreviousRate      int             `json:"previous_rate"`
	Trend             Trend           `json:"trend"`
	TrendPercentage   int             `json:"trend_percentage"`
	CategoryBreakdown []CategoryCount `json:"category_breakdown"`
	RecentActivity    []Activity      `json:"recent_activity"`
	DailyProgress     []ProgressPoint `json:"daily_progress"`
}

// ResolveRange returns the inclusive calendar range a timeframe covers around today.
func ResolveRange(tf Timeframe, today time.Time, opts Options) (time.Time, time.Time) {
	today = Day(today)
	switch tf {
	case TimeframeMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1)
	case TimeframeYear:
		return today.AddDate(0, 0, -(trailingYearDays - 1)), today
	default:
		start := WeekStart(today, opts.WeekStart)
		return start, start.AddDate(0, 0, 6)
	}
}

// tally holds completed (habit, day) pairs that count as real work: the habit is
// known and the day isn't before its creation.
type tally struct {
	byDay   map[int64]int
	byHabit map[uuid.UUID]map[int64]bool
}

func newTally(habits map[uuid.UUID]entity.Habit, idx *Index) *tally {
	t := &tally{
		byDay:   make(map[int64]int),
		byHabit: make(map[uuid.UUID]map[int64]bool),
	}
	for k, completed := range idx.records {
		if !completed {
			continue
		}
		h, ok := habits[k.habitID]
		if !ok || k.day < dayNumber(h.CreatedAt) {
			continue
		}
		t.byDay[k.day]++
		if t.byHabit[k.habitID] == nil {
			t.byHabit[k.habitID] = make(map[int64]bool)
		}
		t.byHabit[k.habitID][k.day] = true
	}
	return t
}

func (t *tally) completedIn(from, to time.Time) int {
	total := 0
	for d := dayNumber(from); d <= dayNumber(to); d++ {
		total += t.byDay[d]
	}
	return total
}

func (t *tally) activeIn(from, to time.Time) int {
	lo, hi := dayNumber(from), dayNumber(to)
	active := 0
	for _, days := range t.byHabit {
		for d := range days {
			if d >= lo && d <= hi {
				active++
				break
			}
		}
	}
	return active
}

func (t *tally) total() int {
	total := 0
	for _, n := range t.byDay {
		total += n
	}
	return total
}

func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// ComputeStats aggregates completion rate, trend, category breakdown, recent
// activity and per-day (per-month for year) progress for the timeframe.
func ComputeStats(habits []entity.Habit, completions []entity.HabitCompletion, tf Timeframe, today time.Time, opts Options) Stats {
	if _, ok := ParseTimeframe(string(tf)); !ok {
		tf = TimeframeWeek
	}
	today = Day(today)
	start, end := ResolveRange(tf, today, opts)
	days := DaysBetween(start, end) + 1

	byID := make(map[uuid.UUID]entity.Habit, len(habits))
	for _, h := range habits {
		byID[h.ID] = h
	}
	idx := NewIndex(completions)
	t := newTally(byID, idx)

	current := percent(t.completedIn(start, end), len(habits)*days)
	prevEnd := start.AddDate(0, 0, -1)
	prevStart := prevEnd.AddDate(0, 0, -(days - 1))
	previous := percent(t.completedIn(prevStart, prevEnd), len(habits)*days)

	stats := Stats{
		Timeframe:         tf,
		StartDate:         start,
		EndDate:           end,
		TotalHabits:       len(habits),
		ActiveHabits:      t.activeIn(start, end),
		CompletionRate:    current,
		PreviousRate:      previous,
		Trend:             TrendNeutral,
		CategoryBreakdown: categoryBreakdown(habits),
		RecentActivity:    recentActivity(byID, idx.authoritative(completions)),
	}
	switch {
	case current > previous:
		stats.Trend = TrendUp
	case current < previous:
		stats.Trend = TrendDown
	}
	if previous != 0 {
		stats.TrendPercentage = int(math.Round(float64(current-previous) / float64(previous) * 100))
	}
	if tf == TimeframeYear {
		stats.DailyProgress = monthlyPoints(habits, t, start, end, today)
	} else {
		stats.DailyProgress = dailyPoints(habits, t, tf, start, end, today)
	}
	return stats
}

func categoryBreakdown(habits []entity.Habit) []CategoryCount {
	counts := make(map[entity.Category]int)
	for _, h := range habits {
		counts[NormalizeCategory(string(h.Category))]++
	}
	result := make([]CategoryCount, 0, len(counts))
	for _, c := range categories {
		if n := counts[c.Category]; n > 0 {
			result = append(result, CategoryCount{CategoryInfo: c, Count: n})
		}
	}
	return result
}

func recentActivity(habits map[uuid.UUID]entity.Habit, records []entity.HabitCompletion) []Activity {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b entity.HabitCompletion) int {
		if c := Day(b.Date).Compare(Day(a.Date)); c != 0 {
			return c
		}
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	if len(sorted) > recentActivityLimit {
		sorted = sorted[:recentActivityLimit]
	}
	result := make([]Activity, 0, len(sorted))
	for _, c := range sorted {
		a := Activity{
			HabitID:    c.HabitID,
			HabitTitle: UnknownHabitTitle,
			Category:   entity.CategoryOther,
			Date:       Day(c.Date),
			Completed:  c.Completed,
		}
		if h, ok := habits[c.HabitID]; ok {
			a.HabitTitle = h.Title
			a.Category = NormalizeCategory(string(h.Category))
		}
		result = append(result, a)
	}
	return result
}

func existingOn(habits []entity.Habit, day time.Time) int {
	n := 0
	for _, h := range habits {
		if !Day(h.CreatedAt).After(day) {
			n++
		}
	}
	return n
}

func dailyPoints(habits []entity.Habit, t *tally, tf Timeframe, start, end, today time.Time) []ProgressPoint {
	points := make([]ProgressPoint, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		total := existingOn(habits, d)
		completed := t.completedIn(d, d)
		label := d.Format("Mon")
		if tf == TimeframeMonth {
			label = strconv.Itoa(d.Day())
		}
		points = append(points, ProgressPoint{
			Label:          label,
			Date:           d,
			TotalHabits:    total,
			CompletedCount: completed,
			RatePercent:    percent(completed, total),
			IsToday:        d.Equal(today),
		})
	}
	return points
}

func monthlyPoints(habits []entity.Habit, t *tally, start, end, today time.Time) []ProgressPoint {
	points := make([]ProgressPoint, 0, 13)
	month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !month.After(end) {
		from, to := month, month.AddDate(0, 1, -1)
		if from.Before(start) {
			from = start
		}
		if to.After(end) {
			to = end
		}
		total := existingOn(habits, to)
		completed := t.completedIn(from, to)
		points = append(points, ProgressPoint{
			Label:          month.Format("Jan"),
			Date:           month,
			TotalHabits:    total,
			CompletedCount: completed,
			RatePercent:    percent(completed, total*(DaysBetween(from, to)+1)),
			IsToday:        !today.Before(from) && !today.After(to),
		})
		month = month.AddDate(0, 1, 0)
	}
	return points
}
