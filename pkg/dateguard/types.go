package dateguard

import "time"

// Context is the caller-supplied intent for the date being validated.
// It gates which optional rules apply.
type Context string

const (
	ContextDeadline Context = "deadline"
	ContextTask     Context = "task"
	ContextMeeting  Context = "meeting"
)

// Options configures a single validation call. The zero value means:
// no context, no bounds, past dates rejected, date-only granularity,
// not required.
type Options struct {
	Context Context

	// MinDate and MaxDate are inclusive calendar bounds. MaxDate is
	// compared at end-of-day (23:59:59.999).
	MinDate *time.Time
	MaxDate *time.Time

	// ProjectDeadline caps task dates: when Context is task, the
	// candidate must not exceed it.
	ProjectDeadline *time.Time

	// AllowPast permits dates before today (or before now, when
	// ShowTime is set).
	AllowPast bool

	// ShowTime marks the time-of-day component as meaningful. Past
	// comparison then uses full instants instead of calendar dates.
	ShowTime bool

	// TimeOfDay is the independent HH:mm input paired with a date-only
	// string. Empty means "00:00".
	TimeOfDay string

	// Required rejects empty input.
	Required bool
}

// Result is the outcome of one validation call.
//
// Invariants: IsValid false always carries a Reason; a SuggestedDate on
// a valid result marks an advisory (warning) outcome; SuggestedDate is
// always a YYYY-MM-DD string.
type Result struct {
	IsValid       bool     `json:"is_valid"`
	Reason        string   `json:"reason,omitempty"`
	SuggestedDate string   `json:"suggested_date,omitempty"`
	Explanation   string   `json:"explanation,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
}

// Rejection reasons and advisory messages surfaced to users.
const (
	ReasonRequired      = "Date is required"
	ReasonInvalidFormat = "Invalid date format"
	ReasonPastDate      = "Date cannot be in the past"
	ReasonPastDateTime  = "Date and time cannot be in the past"

	WarnFarFuture   = "Consider breaking this into smaller milestones"
	WarnImminent    = "Deadline is very soon - consider giving more time"
	WarnWeekend     = "Deadline falls on a weekend"
	WarnSameDayTask = "Task deadline is today - ensure it's achievable"
)

// DateFormat is the wire format for dates produced by the engine.
const DateFormat = "2006-01-02"
