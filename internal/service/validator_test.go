package service

import (
	"errors"
	"testing"

	"github.com/llyods/backend/internal/model"
)

func validRequest() model.SubmissionRequest {
	return model.SubmissionRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Phone:   "+1 555 0100",
		Subject: "Shipment question",
		Message: "Where is my package?",
	}
}

func TestValidateSubmission_Valid(t *testing.T) {
	got, err := ValidateSubmission(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Email != "alice@example.com" {
		t.Errorf("expected email preserved, got %q", got.Email)
	}
}

func TestValidateSubmission_TrimsAllFields(t *testing.T) {
	req := model.SubmissionRequest{
		Name:    "  Alice  ",
		Email:   " alice@example.com ",
		Phone:   "\t+1 555 0100\n",
		Subject: " Hello ",
		Message: "  Hi  ",
	}
	got, err := ValidateSubmission(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Alice" || got.Email != "alice@example.com" || got.Phone != "+1 555 0100" ||
		got.Subject != "Hello" || got.Message != "Hi" {
		t.Errorf("fields not trimmed: %+v", got)
	}
}

func TestValidateSubmission_MissingFields(t *testing.T) {
	blank := func(mutate func(*model.SubmissionRequest)) model.SubmissionRequest {
		req := validRequest()
		mutate(&req)
		return req
	}

	cases := map[string]model.SubmissionRequest{
		"no name":            blank(func(r *model.SubmissionRequest) { r.Name = "" }),
		"no email":           blank(func(r *model.SubmissionRequest) { r.Email = "" }),
		"no phone":           blank(func(r *model.SubmissionRequest) { r.Phone = "" }),
		"no subject":         blank(func(r *model.SubmissionRequest) { r.Subject = "" }),
		"no message":         blank(func(r *model.SubmissionRequest) { r.Message = "" }),
		"whitespace name":    blank(func(r *model.SubmissionRequest) { r.Name = "   " }),
		"whitespace message": blank(func(r *model.SubmissionRequest) { r.Message = "\t\n" }),
		"all empty":          {},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateSubmission(req)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Reason != ReasonMissingFields {
				t.Errorf("expected missing_fields, got %q", vErr.Reason)
			}
		})
	}
}

func TestValidateSubmission_InvalidEmail(t *testing.T) {
	for _, email := range []string{
		"bad",
		"no-at.example.com",
		"no-domain@",
		"@no-local.com",
		"spaces in@example.com",
		"nodot@example",
		"two@@example.com",
	} {
		t.Run(email, func(t *testing.T) {
			req := validRequest()
			req.Email = email
			_, err := ValidateSubmission(req)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError for %q, got %v", email, err)
			}
			if vErr.Reason != ReasonInvalidEmail {
				t.Errorf("expected invalid_email for %q, got %q", email, vErr.Reason)
			}
		})
	}
}

// Missing fields are reported before email format: an empty name with a bad
// email yields missing_fields.
func TestValidateSubmission_MissingFieldsWinsOverEmail(t *testing.T) {
	req := validRequest()
	req.Name = ""
	req.Email = "bad"

	_, err := ValidateSubmission(req)
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Reason != ReasonMissingFields {
		t.Errorf("expected missing_fields first, got %q", vErr.Reason)
	}
}

func TestValidateSubmission_NoTruncation(t *testing.T) {
	req := validRequest()
	long := make([]byte, 20000)
	for i := range long {
		long[i] = 'x'
	}
	req.Message = string(long)

	got, err := ValidateSubmission(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Message) != 20000 {
		t.Errorf("message was altered: len=%d", len(got.Message))
	}
}
