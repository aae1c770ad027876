package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNotEligible is returned when the account may not apply for a quest
	ErrNotEligible = errors.New("not eligible")

	// ErrNotApplied is returned when withdrawing from a quest the account has not applied to
	ErrNotApplied = errors.New("not applied to this quest")

	// ErrApplyInProgress is returned while another quest application is in flight
	ErrApplyInProgress = errors.New("another quest application is in progress")

	// ErrTaskNotSubmittable is returned when a task can't be submitted in its current status
	ErrTaskNotSubmittable = errors.New("task can not be submitted")

	// ErrAuthRequired is returned when a call needs an auth token and none is configured
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthExpired is returned when the configured auth token has expired
	ErrAuthExpired = errors.New("authentication expired")

	// ErrAccountRequired is returned when no account address is configured
	ErrAccountRequired = errors.New("account address required")

	// ErrOAuthCancelled is returned when the user abandons an OAuth authorization
	ErrOAuthCancelled = errors.New("authorization cancelled")
)

// NotFoundErr names the resource that could not be found
type NotFoundErr struct {
	Kind string
	Ref  string
}

func (e NotFoundErr) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Ref)
}

func (e NotFoundErr) Unwrap() error {
	return ErrNotFound
}

// IneligibleErr explains why an apply was refused
type IneligibleErr struct {
	QuestID int
	Reason  string
}

func (e IneligibleErr) Error() string {
	return fmt.Sprintf("can not apply for quest %d: %s", e.QuestID, e.Reason)
}

func (e IneligibleErr) Unwrap() error {
	return ErrNotEligible
}
