package occ

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/skilldrill/internal/gateway"
)

func TestApplyAdoptsServerVersion(t *testing.T) {
	fn := func(_ context.Context, req gateway.MutateSessionRequest) (*gateway.MutateSessionResponse, error) {
		if req.ExpectedVersion != 2 {
			t.Errorf("expected_version = %d, want 2", req.ExpectedVersion)
		}
		return &gateway.MutateSessionResponse{Status: gateway.SessionPaused, Version: 3}, nil
	}

	resp, err := Apply(context.Background(), 2, fn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Version != 3 {
		t.Errorf("version = %d, want 3", resp.Version)
	}
}

func TestApplyClassifiesConflict(t *testing.T) {
	fn := func(_ context.Context, _ gateway.MutateSessionRequest) (*gateway.MutateSessionResponse, error) {
		return nil, &gateway.Error{Kind: gateway.KindVersionConflict, Status: 409, CurrentVersion: 3}
	}

	_, err := Apply(context.Background(), 2, fn)
	if err == nil {
		t.Fatal("expected error")
	}

	var ce *ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConflictError, got %T (%v)", err, err)
	}
	if ce.Expected != 2 {
		t.Errorf("expected = %d, want 2", ce.Expected)
	}
	if ce.ServerVersion != 3 {
		t.Errorf("server version = %d, want 3", ce.ServerVersion)
	}
	if !IsConflict(err) {
		t.Error("IsConflict = false, want true")
	}
	// The gateway error stays reachable for kind checks.
	var ge *gateway.Error
	if !errors.As(err, &ge) {
		t.Error("expected wrapped *gateway.Error")
	}
}

func TestApplyRejectsNonIncreasingVersion(t *testing.T) {
	tests := []struct {
		name     string
		reported int64
	}{
		{"same version", 2},
		{"lower version", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := func(_ context.Context, _ gateway.MutateSessionRequest) (*gateway.MutateSessionResponse, error) {
				return &gateway.MutateSessionResponse{Version: tt.reported}, nil
			}

			_, err := Apply(context.Background(), 2, fn)
			var me *MonotonicityError
			if !errors.As(err, &me) {
				t.Fatalf("expected *MonotonicityError, got %T (%v)", err, err)
			}
			if me.After != tt.reported {
				t.Errorf("after = %d, want %d", me.After, tt.reported)
			}
		})
	}
}

func TestApplyPassesThroughOtherErrors(t *testing.T) {
	inner := &gateway.Error{Kind: gateway.KindTransport, Message: "connection refused"}
	fn := func(_ context.Context, _ gateway.MutateSessionRequest) (*gateway.MutateSessionResponse, error) {
		return nil, inner
	}

	_, err := Apply(context.Background(), 2, fn)
	if IsConflict(err) {
		t.Error("transport failure must not classify as conflict")
	}
	if gateway.KindOf(err) != gateway.KindTransport {
		t.Errorf("kind = %q, want transport", gateway.KindOf(err))
	}
}

func TestAccept(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		reported int64
		want     int64
		wantErr  bool
	}{
		{"increase", 2, 5, 5, false},
		{"repeat", 3, 3, 3, false},
		{"backward", 4, 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accept(tt.current, tt.reported)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("version = %d, want %d", got, tt.want)
			}
		})
	}
}
