package service

import (
	"regexp"
	"strings"

	"github.com/llyods/backend/internal/model"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSubmission checks and normalizes a raw submission. Rules apply in
// order and the first failure wins: all five text fields must be non-empty
// after trimming, then the trimmed email must match the address pattern.
// On success all five fields are returned trimmed; no other transformation
// is applied. Pure: no side effects.
func ValidateSubmission(req model.SubmissionRequest) (model.SubmissionRequest, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Phone == "" || req.Subject == "" || req.Message == "" {
		return model.SubmissionRequest{}, &ValidationError{
			Reason:  ReasonMissingFields,
			Message: "All fields are required",
		}
	}

	if !emailPattern.MatchString(req.Email) {
		return model.SubmissionRequest{}, &ValidationError{
			Reason:  ReasonInvalidEmail,
			Message: "Invalid email format",
		}
	}

	return req, nil
}
