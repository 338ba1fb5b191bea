package http

import "aether/internal/validate"

// validateDateReq mirrors the engine's option surface so clients
// (form widgets, mostly) can validate before submitting.
type validateDateReq struct {
	Date            string `json:"date"`
	Context         string `json:"context"          binding:"omitempty,oneof=deadline task meeting"`
	MinDate         string `json:"min_date"`
	MaxDate         string `json:"max_date"`
	ProjectDeadline string `json:"project_deadline"`
	TimeOfDay       string `json:"time_of_day"`
	AllowPast       bool   `json:"allow_past"`
	ShowTime        bool   `json:"show_time"`
	Required        bool   `json:"required"`
}

func (r validateDateReq) toInput() validate.ValidateDateInput {
	return validate.ValidateDateInput{
		Date:            r.Date,
		Context:         r.Context,
		MinDate:         r.MinDate,
		MaxDate:         r.MaxDate,
		ProjectDeadline: r.ProjectDeadline,
		TimeOfDay:       r.TimeOfDay,
		AllowPast:       r.AllowPast,
		ShowTime:        r.ShowTime,
		Required:        r.Required,
	}
}
