package usecase

import (
	"context"
	"time"

	"aether/internal/validate"
	"aether/pkg/dateguard"
)

func (uc *implUseCase) ValidateDate(ctx context.Context, input validate.ValidateDateInput) (dateguard.Result, error) {
	opts, err := uc.buildOptions(input)
	if err != nil {
		uc.l.Warnf(ctx, "uc.ValidateDate bad options: %v", err)
		return dateguard.Result{}, err
	}

	return uc.validator.Validate(input.Date, opts), nil
}

func (uc *implUseCase) buildOptions(input validate.ValidateDateInput) (dateguard.Options, error) {
	opts := dateguard.Options{
		AllowPast: input.AllowPast,
		ShowTime:  input.ShowTime,
		TimeOfDay: input.TimeOfDay,
		Required:  input.Required,
	}

	switch dateguard.Context(input.Context) {
	case "", dateguard.ContextDeadline, dateguard.ContextTask, dateguard.ContextMeeting:
		opts.Context = dateguard.Context(input.Context)
	default:
		return dateguard.Options{}, validate.ErrBadContext
	}

	var err error
	if opts.MinDate, err = parseBound(input.MinDate); err != nil {
		return dateguard.Options{}, err
	}
	if opts.MaxDate, err = parseBound(input.MaxDate); err != nil {
		return dateguard.Options{}, err
	}
	if opts.ProjectDeadline, err = parseBound(input.ProjectDeadline); err != nil {
		return dateguard.Options{}, err
	}

	return opts, nil
}

func parseBound(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dateguard.DateFormat, s, time.Local)
	if err != nil {
		return nil, validate.ErrBadBound
	}
	return &t, nil
}
