package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"aether/internal/validate"
	"aether/pkg/dateguard"
	pkgLog "aether/pkg/log"
)

// Saturday morning.
var frozenNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.Local)

func newUC() validate.UseCase {
	v := dateguard.NewWithClock(func() time.Time { return frozenNow })
	return New(v, pkgLog.NewNoop())
}

func TestValidateDateValid(t *testing.T) {
	uc := newUC()

	res, err := uc.ValidateDate(context.Background(), validate.ValidateDateInput{
		Date:    "2024-06-20",
		Context: "task",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsValid {
		t.Errorf("expected valid, got %+v", res)
	}
}

func TestValidateDatePastReturnsResultNotError(t *testing.T) {
	uc := newUC()

	res, err := uc.ValidateDate(context.Background(), validate.ValidateDateInput{
		Date: "2024-06-10",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsValid {
		t.Fatal("past date accepted")
	}
	if res.Reason != dateguard.ReasonPastDate {
		t.Errorf("unexpected reason %q", res.Reason)
	}
	if res.SuggestedDate != "2024-06-16" {
		t.Errorf("expected tomorrow as suggestion, got %q", res.SuggestedDate)
	}
}

func TestValidateDateProjectDeadlineCap(t *testing.T) {
	uc := newUC()

	res, err := uc.ValidateDate(context.Background(), validate.ValidateDateInput{
		Date:            "2024-07-01",
		Context:         "task",
		ProjectDeadline: "2024-06-20",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsValid {
		t.Fatal("date past project deadline accepted")
	}
	if res.SuggestedDate != "2024-06-19" {
		t.Errorf("expected day before deadline, got %q", res.SuggestedDate)
	}
}

func TestValidateDateWeekendAdvisory(t *testing.T) {
	uc := newUC()

	res, err := uc.ValidateDate(context.Background(), validate.ValidateDateInput{
		Date:    "2024-06-16", // Sunday
		Context: "deadline",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsValid {
		t.Fatalf("advisory outcome should stay valid: %+v", res)
	}
	found := false
	for _, w := range res.Warnings {
		if w == dateguard.WarnWeekend {
			found = true
		}
	}
	if !found {
		t.Errorf("expected weekend warning, got %v", res.Warnings)
	}
	if res.SuggestedDate != "2024-06-17" {
		t.Errorf("expected next Monday, got %q", res.SuggestedDate)
	}
}

func TestValidateDateBadContext(t *testing.T) {
	uc := newUC()

	_, err := uc.ValidateDate(context.Background(), validate.ValidateDateInput{
		Date:    "2024-06-20",
		Context: "birthday",
	})
	if !errors.Is(err, validate.ErrBadContext) {
		t.Fatalf("expected ErrBadContext, got %v", err)
	}
}

func TestValidateDateBadBound(t *testing.T) {
	uc := newUC()

	_, err := uc.ValidateDate(context.Background(), validate.ValidateDateInput{
		Date:    "2024-06-20",
		MinDate: "next week",
	})
	if !errors.Is(err, validate.ErrBadBound) {
		t.Fatalf("expected ErrBadBound, got %v", err)
	}
}

func TestValidateDateRequired(t *testing.T) {
	uc := newUC()

	res, err := uc.ValidateDate(context.Background(), validate.ValidateDateInput{
		Required: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.IsValid || res.Reason != dateguard.ReasonRequired {
		t.Errorf("expected required rejection, got %+v", res)
	}
}
