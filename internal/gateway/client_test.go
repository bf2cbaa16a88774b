package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := NewClient(Config{
		BaseURL: server.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c
}

func TestClient_StartSession(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/sessions" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q, want bearer token", got)
		}

		var req StartSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Kind != KindAdaptive {
			t.Errorf("kind = %q, want adaptive", req.Kind)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"session_id":      "sess-1",
			"kind":            "adaptive",
			"strategy":        "balanced",
			"status":          "active",
			"version":         6,
			"is_resumed":      true,
			"total_questions": 5,
			"correct_count":   3,
		})
	}

	c := newTestClient(t, handler)
	snap, err := c.StartSession(context.Background(), StartSessionRequest{Kind: KindAdaptive})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.IsResumed {
		t.Error("expected is_resumed to be true")
	}
	if snap.Version != 6 {
		t.Errorf("version = %d, want 6", snap.Version)
	}
	if snap.TotalQuestions != 5 || snap.CorrectCount != 3 {
		t.Errorf("counters = %d/%d, want 5/3", snap.TotalQuestions, snap.CorrectCount)
	}
	if snap.Status != SessionActive {
		t.Errorf("status = %q, want active", snap.Status)
	}
}

func TestClient_PauseSessionCarriesExpectedVersion(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/sessions/sess-1/pause" {
			t.Errorf("path = %q", r.URL.Path)
		}

		var req MutateSessionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ExpectedVersion != 4 {
			t.Errorf("expected_version = %d, want 4", req.ExpectedVersion)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": "paused", "version": 5})
	}

	c := newTestClient(t, handler)
	resp, err := c.PauseSession(context.Background(), "sess-1", MutateSessionRequest{ExpectedVersion: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != SessionPaused {
		t.Errorf("status = %q, want paused", resp.Status)
	}
	if resp.Version != 5 {
		t.Errorf("version = %d, want 5", resp.Version)
	}
}

func TestClient_SubmitAnswerSendsIdempotencyKey(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/sessions/sess-1/answers" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Idempotency-Key"); got != "key-123" {
			t.Errorf("Idempotency-Key = %q, want key-123", got)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"correct":     true,
			"explanation": "7 x 8 = 56",
			"stats":       map[string]any{"answered": 3, "correct_count": 2, "version": 9},
			"completed":   false,
		})
	}

	c := newTestClient(t, handler)
	res, err := c.SubmitAnswer(context.Background(), SubmitAnswerRequest{
		SessionID:      "sess-1",
		QuestionID:     "q-7",
		SelectedOption: "b",
	}, "key-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Correct {
		t.Error("expected correct answer")
	}
	if res.Stats.Version != 9 {
		t.Errorf("stats.version = %d, want 9", res.Stats.Version)
	}
	if res.Completed {
		t.Error("expected completed to be false")
	}
}

func TestClient_NextQuestionExhausted(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"question": null}`))
	}

	c := newTestClient(t, handler)
	q, err := c.NextQuestion(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("exhausted plan must not be an error, got: %v", err)
	}
	if q != nil {
		t.Fatalf("expected nil question, got %+v", q)
	}
}

func TestClient_NextQuestion(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"question": map[string]any{
				"id":     "q-1",
				"prompt": "What is 7 x 8?",
				"options": []map[string]any{
					{"id": "a", "text": "54"},
					{"id": "b", "text": "56"},
				},
				"topic":      "multiplication",
				"difficulty": 3,
			},
		})
	}

	c := newTestClient(t, handler)
	q, err := c.NextQuestion(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q == nil {
		t.Fatal("expected a question")
	}
	if q.ID != "q-1" {
		t.Errorf("id = %q, want q-1", q.ID)
	}
	if len(q.Options) != 2 {
		t.Errorf("options = %d, want 2", len(q.Options))
	}
}

func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   Kind
	}{
		{"unauthorized", http.StatusUnauthorized, `{"error":{"message":"token expired"}}`, KindUnauthenticated},
		{"not found", http.StatusNotFound, `{"error":{"message":"no such session"}}`, KindNotFound},
		{"conflict", http.StatusConflict, `{"error":{"code":"version_conflict","message":"stale version","current_version":3}}`, KindVersionConflict},
		{"validation", http.StatusUnprocessableEntity, `{"error":{"message":"bad option","field_errors":{"selected_option":"unknown option"}}}`, KindValidation},
		{"rate limited", http.StatusTooManyRequests, `{"error":{"message":"slow down"}}`, KindRateLimited},
		{"server error", http.StatusInternalServerError, `{"error":{"message":"boom"}}`, KindServer},
		{"unclassified", http.StatusBadGateway, `gateway timeout`, KindServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}

			c := newTestClient(t, handler)
			_, err := c.GetSession(context.Background(), "sess-1")
			if err == nil {
				t.Fatal("expected error")
			}

			var ge *Error
			if !errors.As(err, &ge) {
				t.Fatalf("expected *Error, got %T (%v)", err, err)
			}
			if ge.Kind != tt.want {
				t.Errorf("kind = %q, want %q", ge.Kind, tt.want)
			}
			if ge.Status != tt.status {
				t.Errorf("status = %d, want %d", ge.Status, tt.status)
			}
		})
	}
}

func TestClient_ConflictCarriesCurrentVersion(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":{"code":"version_conflict","message":"stale","current_version":3}}`))
	}

	c := newTestClient(t, handler)
	_, err := c.EndSession(context.Background(), "sess-1", MutateSessionRequest{ExpectedVersion: 2})

	var ge *Error
	if !errors.As(err, &ge) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ge.Kind != KindVersionConflict {
		t.Fatalf("kind = %q, want version_conflict", ge.Kind)
	}
	if ge.CurrentVersion != 3 {
		t.Errorf("current_version = %d, want 3", ge.CurrentVersion)
	}
}

func TestClient_ValidationCarriesFieldErrors(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"message":"invalid","field_errors":{"selected_option":"unknown option"}}}`))
	}

	c := newTestClient(t, handler)
	_, err := c.SubmitAnswer(context.Background(), SubmitAnswerRequest{SessionID: "s", QuestionID: "q", SelectedOption: "z"}, "k")

	var ge *Error
	if !errors.As(err, &ge) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if got := ge.FieldErrors["selected_option"]; got != "unknown option" {
		t.Errorf("field error = %q, want 'unknown option'", got)
	}
}

func TestClient_RateLimitParsesRetryAfter(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"slow down"}}`))
	}

	c := newTestClient(t, handler)
	_, err := c.ReadingStats(context.Background())

	var ge *Error
	if !errors.As(err, &ge) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if ge.RetryAfter != 30*time.Second {
		t.Errorf("retry after = %v, want 30s", ge.RetryAfter)
	}
}

func TestClient_OnUnauthorizedHook(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}
	server := httptest.NewServer(http.HandlerFunc(handler))
	defer server.Close()

	fired := 0
	c, err := NewClient(Config{
		BaseURL: server.URL,
		Token:   "expired",
		Timeout: 5 * time.Second,
	}, func() { fired++ })
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = c.GetSession(context.Background(), "sess-1")
	if KindOf(err) != KindUnauthenticated {
		t.Fatalf("kind = %q, want unauthenticated", KindOf(err))
	}
	if fired != 1 {
		t.Errorf("onUnauthorized fired %d times, want 1", fired)
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, err := NewClient(Config{BaseURL: server.URL, Timeout: time.Second}, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	server.Close() // connection refused from here on

	_, err = c.ReadingStats(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != KindTransport {
		t.Errorf("kind = %q, want transport", KindOf(err))
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"", 0},
		{"5", 5 * time.Second},
		{"0", 0},
		{"not-a-number-or-date", 0},
	}

	for _, tt := range tests {
		if got := parseRetryAfter(tt.in); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: "https://api.example.com", Timeout: time.Second}, false},
		{"empty URL", Config{Timeout: time.Second}, true},
		{"bad scheme", Config{BaseURL: "ftp://api.example.com", Timeout: time.Second}, true},
		{"zero timeout", Config{BaseURL: "https://api.example.com"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKindOfPlainError(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindTransport {
		t.Errorf("kind = %q, want transport for non-gateway errors", got)
	}
}
