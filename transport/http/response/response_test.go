package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"prism/shared/failure"
	"prism/transport/http/response"
)

func TestWithError_PlainError(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithError(recorder, errors.New("boom"))

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, recorder.Code)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if string(body["error"]) != `"boom"` {
		t.Errorf("expected error field to be %q, got %s", "boom", body["error"])
	}

	if _, ok := body["details"]; ok {
		t.Error("expected details to be omitted for an error without them")
	}
}

func TestWithError_FailureDetails(t *testing.T) {
	recorder := httptest.NewRecorder()

	details := []map[string]string{
		{"kind": "room-double-booking", "booking_id": "existing"},
	}
	response.WithError(recorder, failure.ConflictWithDetails("booking collides with the existing schedule", details))

	if recorder.Code != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, recorder.Code)
	}

	var body struct {
		Error   string              `json:"error"`
		Details []map[string]string `json:"details"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}

	if body.Error != "booking collides with the existing schedule" {
		t.Errorf("unexpected error message: %s", body.Error)
	}

	if len(body.Details) != 1 {
		t.Fatalf("expected 1 detail entry, got %d", len(body.Details))
	}
	if body.Details[0]["kind"] != "room-double-booking" || body.Details[0]["booking_id"] != "existing" {
		t.Errorf("expected the conflict entry to round-trip, got %v", body.Details[0])
	}
}
