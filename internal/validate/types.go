package validate

// ValidateDateInput carries one candidate date plus the rule set to
// apply. Bound fields are YYYY-MM-DD strings; empty means unbounded.
type ValidateDateInput struct {
	Date            string
	Context         string // "", "deadline", "task" or "meeting"
	MinDate         string
	MaxDate         string
	ProjectDeadline string
	TimeOfDay       string // HH:mm paired with a date-only Date
	AllowPast       bool
	ShowTime        bool
	Required        bool
}
