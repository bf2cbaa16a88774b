// Package occ guards version-carrying session mutations. The server owns
// the version: it increments on every accepted mutation, and the client
// only ever adopts server-reported values. The guard enforces that
// contract locally and turns version skew into a first-class error.
package occ

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/skilldrill/internal/gateway"
)

// MutateFunc performs one version-guarded mutation against the platform.
type MutateFunc func(ctx context.Context, req gateway.MutateSessionRequest) (*gateway.MutateSessionResponse, error)

// ConflictError reports that the server rejected a mutation because the
// expected version was stale. It is never retried blindly; the caller
// must reconcile against the server's state first.
type ConflictError struct {
	// Expected is the version the client sent.
	Expected int64

	// ServerVersion is the server's version at conflict time, when the
	// conflict body reported it. Zero means unreported.
	ServerVersion int64

	// Err is the underlying gateway error.
	Err error
}

func (e *ConflictError) Error() string {
	if e.ServerVersion > 0 {
		return fmt.Sprintf("version conflict: sent %d, server at %d", e.Expected, e.ServerVersion)
	}
	return fmt.Sprintf("version conflict: sent %d", e.Expected)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// MonotonicityError reports a server-reported version that moved backward,
// which violates the platform contract.
type MonotonicityError struct {
	Before int64
	After  int64
}

func (e *MonotonicityError) Error() string {
	return fmt.Sprintf("version moved from %d to %d, must strictly increase", e.Before, e.After)
}

// Apply runs one guarded mutation with the caller's expected version.
// Conflicts come back as *ConflictError; an accepted mutation whose
// response version does not strictly exceed expected fails with
// *MonotonicityError.
func Apply(ctx context.Context, expected int64, fn MutateFunc) (*gateway.MutateSessionResponse, error) {
	resp, err := fn(ctx, gateway.MutateSessionRequest{ExpectedVersion: expected})
	if err != nil {
		var ge *gateway.Error
		if errors.As(err, &ge) && ge.Kind == gateway.KindVersionConflict {
			return nil, &ConflictError{
				Expected:      expected,
				ServerVersion: ge.CurrentVersion,
				Err:           err,
			}
		}
		return nil, err
	}

	if resp.Version <= expected {
		return nil, &MonotonicityError{Before: expected, After: resp.Version}
	}
	return resp, nil
}

// Accept reconciles a server-reported version with the last known one for
// reads and idempotent replays: the version may repeat but must never
// move backward.
func Accept(current, reported int64) (int64, error) {
	if reported < current {
		return 0, &MonotonicityError{Before: current, After: reported}
	}
	return reported, nil
}

// IsConflict reports whether err is a version conflict.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
