package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Kind classifies a platform call failure. Every failing call produces
// exactly one Kind; downstream logic switches on it and never probes
// response shapes itself.
type Kind string

const (
	// KindTransport covers network and timeout failures where no HTTP
	// response was received. Retrying is the caller's decision.
	KindTransport Kind = "transport"

	// KindUnauthenticated is a 401. Not handled locally; the auth
	// boundary's OnUnauthorized hook owns the global logout.
	KindUnauthenticated Kind = "unauthenticated"

	// KindNotFound is a 404: the session or review no longer exists.
	KindNotFound Kind = "not_found"

	// KindVersionConflict is a 409: the expected_version the client sent
	// is stale. Never retried blindly; the caller must reconcile.
	KindVersionConflict Kind = "version_conflict"

	// KindValidation is a 422 with structured field errors.
	KindValidation Kind = "validation"

	// KindRateLimited is a 429; RetryAfter carries the server's cool-down
	// when it sent one.
	KindRateLimited Kind = "rate_limited"

	// KindServer covers 5xx and anything unclassified. Conservative: no
	// state is assumed changed.
	KindServer Kind = "server"
)

// Error is the single error type produced at the HTTP boundary.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 for transport failures
	Code    string // machine-readable server code when present
	Message string

	// FieldErrors holds per-field messages for KindValidation.
	FieldErrors map[string]string

	// RetryAfter is the server-requested cool-down for KindRateLimited.
	RetryAfter time.Duration

	// CurrentVersion is the server's version at conflict time, when the
	// conflict body reported it. Zero means unreported.
	CurrentVersion int64

	// Err is the underlying transport error, if any.
	Err error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("platform: %s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("platform: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("platform: %s (HTTP %d)", e.Kind, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from any error. Errors that did not come from
// the gateway classify as KindTransport (the call never produced a
// normalized response).
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindTransport
}

// IsConflict reports whether err is a version conflict.
func IsConflict(err error) bool { return KindOf(err) == KindVersionConflict }

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// errorBody is the platform's error envelope. The shape nests a little
// differently per endpoint generation; decoding is lenient and anything
// missing falls back to transport-level text.
type errorBody struct {
	Error struct {
		Code           string            `json:"code"`
		Message        string            `json:"message"`
		FieldErrors    map[string]string `json:"field_errors"`
		CurrentVersion int64             `json:"current_version"`
	} `json:"error"`
	// Older endpoints put the message at the top level.
	Message string `json:"message"`
}

// normalizeError converts a non-2xx response into an *Error. This is the
// only place response status codes and error bodies are interpreted.
func normalizeError(resp *http.Response) *Error {
	e := &Error{Status: resp.StatusCode}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		e.Kind = KindUnauthenticated
	case resp.StatusCode == http.StatusNotFound:
		e.Kind = KindNotFound
	case resp.StatusCode == http.StatusConflict:
		e.Kind = KindVersionConflict
	case resp.StatusCode == http.StatusUnprocessableEntity:
		e.Kind = KindValidation
	case resp.StatusCode == http.StatusTooManyRequests:
		e.Kind = KindRateLimited
		e.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
	default:
		e.Kind = KindServer
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		e.Code = body.Error.Code
		e.Message = body.Error.Message
		e.FieldErrors = body.Error.FieldErrors
		e.CurrentVersion = body.Error.CurrentVersion
		if e.Message == "" {
			e.Message = body.Message
		}
	}
	if e.Message == "" && len(raw) > 0 {
		e.Message = string(raw)
	}
	if e.Message == "" {
		e.Message = http.StatusText(resp.StatusCode)
	}

	return e
}

// transportError wraps a failure that never produced an HTTP response.
func transportError(op string, err error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: op,
		Err:     err,
	}
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}
