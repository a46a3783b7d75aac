package matching

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by the pipeline. EmptyResult is deliberately
// not an error: a request with zero providers in radius succeeds with an
// empty list.
var (
	// ErrMemberNotFound is returned when the member id is not in the dataset.
	ErrMemberNotFound = errors.New("member not found")

	// ErrDataUnavailable is returned when the member or provider dataset is
	// empty or not loaded. Terminal at the service level, not per request.
	ErrDataUnavailable = errors.New("data unavailable")
)

// MemberNotFoundError carries the offending member id.
type MemberNotFoundError struct {
	MemberID string
}

func (e *MemberNotFoundError) Error() string {
	return fmt.Sprintf("member %q not found", e.MemberID)
}

func (e *MemberNotFoundError) Is(target error) bool {
	return target == ErrMemberNotFound
}

// NewMemberNotFoundError creates a new MemberNotFoundError
func NewMemberNotFoundError(memberID string) *MemberNotFoundError {
	return &MemberNotFoundError{MemberID: memberID}
}
