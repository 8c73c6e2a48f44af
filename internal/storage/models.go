package storage

import "time"

// Weekday identifies a school day. Sunday is deliberately absent: the
// weekly schedule runs Monday through Saturday.
type Weekday string

// School days in display order.
const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// Weekdays returns the school days in Monday-first display order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// Valid reports whether d names a school day.
func (d Weekday) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	}
	return false
}

// Label returns the capitalized display name for d.
func (d Weekday) Label() string {
	if d == "" {
		return ""
	}
	return string(d[0]-'a'+'A') + string(d[1:])
}

// ScheduleEntry is a single class in the weekly schedule.
type ScheduleEntry struct {
	ID      string `json:"id"`
	Time    string `json:"time"` // 24-hour HH:MM
	Subject string `json:"subject"`
	Teacher string `json:"teacher,omitempty"`
}

// Schedules maps each school day to its classes in insertion order.
// Time-sorted views are produced at read time; the stored order is
// never rewritten.
type Schedules map[Weekday][]ScheduleEntry

// Task is a to-do item with an optional deadline.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Deadline  string    `json:"deadline,omitempty"` // YYYY-MM-DD, empty means undated
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Habit is one trackable daily habit from the fixed catalog.
type Habit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// HabitRecord maps ISO dates (YYYY-MM-DD) to the set of habit IDs
// completed on that date.
type HabitRecord map[string]map[string]bool

// habitCatalog is the fixed set of trackable habits. Users toggle
// completion per day but cannot add or remove habits.
var habitCatalog = []Habit{
	{ID: "study", Name: "Study session", Icon: "📖"},
	{ID: "exercise", Name: "Exercise", Icon: "🏃"},
	{ID: "reading", Name: "Read a book", Icon: "📚"},
	{ID: "water", Name: "Drink water", Icon: "💧"},
	{ID: "sleep", Name: "Sleep early", Icon: "😴"},
	{ID: "journal", Name: "Write journal", Icon: "✍️"},
}

// Catalog returns a copy of the fixed habit catalog.
func Catalog() []Habit {
	out := make([]Habit, len(habitCatalog))
	copy(out, habitCatalog)
	return out
}

// CatalogHabit looks up a habit by ID in the fixed catalog.
func CatalogHabit(id string) (Habit, bool) {
	for _, h := range habitCatalog {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}
