package validation

import (
	"errors"
	"strings"
	"testing"

	"saunie/internal/shared/apperrors"
)

type contact struct {
	Phone string `json:"phone" validate:"required"`
}

type sample struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"omitempty,email"`
	Seats    int     `json:"busCapacity" validate:"min=1,max=60"`
	Time     string  `json:"time" validate:"datetime=15:04"`
	Contact  contact `json:"emergencyContact"`
	Internal string  `json:"-"`
}

func TestStructValid(t *testing.T) {
	s := sample{Name: "Ana", Seats: 45, Time: "08:30", Contact: contact{Phone: "555"}}
	if err := Struct(s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructReportsWireNames(t *testing.T) {
	err := Struct(sample{Email: "nope", Seats: 61, Time: "8am"})
	if !errors.Is(err, apperrors.ErrInvalidRequest) {
		t.Fatalf("expected INVALID_REQUEST, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{
		"name is required",
		"email must be a valid email address",
		"busCapacity must be at most 60",
		"time must match the format 15:04",
		"emergencyContact.phone is required",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}
