package dateguard

import (
	"fmt"
	"strings"
	"time"
)

// farFutureYears is the hardcoded horizon beyond which dates are rejected.
const farFutureYears = 10

// Validator checks candidate dates against a rule set and computes
// concrete alternatives for dates that fail or merely warn. All
// arithmetic happens in the validator's location with an injectable
// clock, so tests can freeze "now".
type Validator struct {
	now      func() time.Time
	location *time.Location
}

// New creates a Validator on the system clock and local timezone.
func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Validator with a custom time source.
func NewWithClock(now func() time.Time) *Validator {
	return &Validator{
		now:      now,
		location: time.Local,
	}
}

var defaultValidator = New()

// Validate runs the default Validator. See Validator.Validate.
func Validate(dateStr string, opts Options) Result {
	return defaultValidator.Validate(dateStr, opts)
}

// Validate applies the rule pipeline to dateStr under opts. Rules run
// in a fixed order; the first hard failure wins and its reason is the
// only one surfaced. Advisory rules never fail, they annotate a passing
// result. Validate never panics and always returns a Result, even for
// malformed input.
func (v *Validator) Validate(dateStr string, opts Options) Result {
	dateStr = strings.TrimSpace(dateStr)

	// Rule 1: required. An empty optional date is valid as-is and
	// short-circuits the rest of the pipeline.
	if dateStr == "" {
		if opts.Required {
			return Result{Reason: ReasonRequired}
		}
		return Result{IsValid: true}
	}

	// Rule 2: parse validity.
	candidate, err := v.parse(dateStr, opts.TimeOfDay)
	if err != nil {
		return Result{Reason: ReasonInvalidFormat}
	}

	now := v.now().In(v.location)

	// Rule 3: past-date policy. Granularity depends on ShowTime:
	// date-only inputs compare calendar dates, timed inputs compare
	// full instants with seconds zeroed.
	if !opts.AllowPast {
		if opts.ShowTime {
			ref := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, v.location)
			if candidate.Before(ref) {
				sugg := formatDate(tomorrow(now))
				return Result{
					Reason:        ReasonPastDateTime,
					SuggestedDate: sugg,
					Explanation:   fmt.Sprintf("The earliest available date is tomorrow (%s)", sugg),
				}
			}
		} else if startOfDay(candidate).Before(startOfDay(now)) {
			sugg := formatDate(tomorrow(now))
			return Result{
				Reason:        ReasonPastDate,
				SuggestedDate: sugg,
				Explanation:   fmt.Sprintf("The earliest available date is tomorrow (%s)", sugg),
			}
		}
	}

	// Rule 4: project-deadline ceiling for task dates.
	if opts.Context == ContextTask && opts.ProjectDeadline != nil {
		deadline := opts.ProjectDeadline.In(v.location)
		if candidate.After(deadline) {
			sugg := formatDate(oneDayBefore(deadline))
			return Result{
				Reason:        fmt.Sprintf("Date exceeds the project deadline (%s)", formatDate(deadline)),
				SuggestedDate: sugg,
				Explanation:   fmt.Sprintf("The day before the project deadline (%s) is the latest available date", sugg),
			}
		}
	}

	// Rule 5: min-date floor, calendar-date comparison.
	if opts.MinDate != nil {
		min := opts.MinDate.In(v.location)
		if startOfDay(candidate).Before(startOfDay(min)) {
			sugg := formatDate(min)
			return Result{
				Reason:        fmt.Sprintf("Date is before the earliest allowed date (%s)", sugg),
				SuggestedDate: sugg,
				Explanation:   fmt.Sprintf("%s is the earliest date you can pick", sugg),
			}
		}
	}

	// Rule 6: max-date ceiling at end-of-day.
	if opts.MaxDate != nil {
		max := opts.MaxDate.In(v.location)
		if candidate.After(endOfDay(max)) {
			sugg := formatDate(max)
			return Result{
				Reason:        fmt.Sprintf("Date is after the latest allowed date (%s)", sugg),
				SuggestedDate: sugg,
				Explanation:   fmt.Sprintf("%s is the latest date you can pick", sugg),
			}
		}
	}

	// Rule 7: far-future ceiling. Fails hard but still attaches the
	// milestone warning, matching long-standing picker behavior.
	if candidate.After(now.AddDate(farFutureYears, 0, 0)) {
		sugg := formatDate(oneYearFromNow(now))
		return Result{
			Reason:        fmt.Sprintf("Date is more than %d years in the future", farFutureYears),
			SuggestedDate: sugg,
			Explanation:   fmt.Sprintf("One year from now (%s) is a more realistic horizon", sugg),
			Warnings:      []string{WarnFarFuture},
		}
	}

	// Advisory rules: never fail, warnings accumulate. The first rule
	// to attach a suggestion wins.
	res := Result{IsValid: true}

	// Rule 8: imminent-deadline warning.
	if opts.Context == ContextDeadline && !opts.AllowPast && candidate.Sub(now) < time.Hour {
		sugg := formatDate(tomorrow(now))
		res.Warnings = append(res.Warnings, WarnImminent)
		res.SuggestedDate = sugg
		res.Explanation = fmt.Sprintf("Moving the deadline to tomorrow (%s) gives more breathing room", sugg)
	}

	// Rule 9: weekend warning for deadlines.
	if opts.Context == ContextDeadline && isWeekend(candidate) {
		res.Warnings = append(res.Warnings, WarnWeekend)
		if res.SuggestedDate == "" {
			sugg := formatDate(nextMonday(candidate))
			res.SuggestedDate = sugg
			res.Explanation = fmt.Sprintf("The following Monday (%s) is the next business day", sugg)
		}
	}

	// Rule 10: same-day task advisory, no suggestion attached.
	if opts.Context == ContextTask {
		daysUntil := candidate.Sub(now).Hours() / 24
		if daysUntil > 0 && daysUntil < 1 {
			res.Warnings = append(res.Warnings, WarnSameDayTask)
		}
	}

	return res
}

// parse converts a date string plus an optional HH:mm time-of-day into
// a candidate instant in the validator's location. Accepts YYYY-MM-DD
// and YYYY-MM-DDTHH:mm[:ss]; anything else is a parse error.
func (v *Validator) parse(dateStr, timeOfDay string) (time.Time, error) {
	if strings.Contains(dateStr, "T") {
		for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02T15:04"} {
			if t, err := time.ParseInLocation(layout, dateStr, v.location); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("invalid datetime %q", dateStr)
	}

	if timeOfDay == "" {
		timeOfDay = "00:00"
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", dateStr+"T"+timeOfDay, v.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// FormatMessage renders a Result as the user-facing message shown next
// to a date picker. Valid results without warnings render empty.
func FormatMessage(r Result) string {
	if r.IsValid && len(r.Warnings) == 0 {
		return ""
	}

	var msg string
	if !r.IsValid {
		msg = r.Reason
	} else {
		msg = strings.Join(r.Warnings, "\n")
	}

	if r.Explanation != "" {
		msg += "\n\n" + r.Explanation
	}
	return msg
}
