package types

import (
	"fmt"
	"strings"
)

// ValidationError rejects a mutation before any network call is made.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, ", ")
}

// RemoteError wraps a rejection from the remote ledger store.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// AuthError means the operation ran without a valid session.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "auth: " + e.Reason
}

// ConsistencyError reports a series mutation that succeeded on some
// members and failed on others. Members already written stay written;
// there is no rollback and no retry.
type ConsistencyError struct {
	ReferenceCode int64
	Applied       []uint64
	Failed        []uint64
	Err           error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("series %d partially mutated (applied %d, failed %d): %v",
		e.ReferenceCode, len(e.Applied), len(e.Failed), e.Err)
}

func (e *ConsistencyError) Unwrap() error {
	return e.Err
}
