package dto_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/demo-bd/internal/adapters/http/dto"
	"github.com/jsamuelsen11/demo-bd/internal/domain"
)

// --- NewErrorResponse tests ---

func TestNewErrorResponse_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantTitle  string
	}{
		{"ErrNotFound maps to 404", domain.ErrNotFound, http.StatusNotFound, "Not Found"},
		{
			"ErrValidation maps to 400",
			&domain.ValidationError{Fields: map[string]string{"n": "is required"}},
			http.StatusBadRequest, "Bad Request",
		},
		{"ErrTimeout maps to 504", domain.ErrTimeout, http.StatusGatewayTimeout, "Gateway Timeout"},
		{"ErrUnavailable maps to 503", domain.ErrUnavailable, http.StatusServiceUnavailable, "Service Unavailable"},
		{"unknown error maps to 500", errors.New("oops"), http.StatusInternalServerError, "Internal Server Error"},
		{"wrapped sentinel keeps its mapping", fmt.Errorf("computing: %w", domain.ErrNotFound), http.StatusNotFound, "Not Found"},
		{"ProblemError uses its status", &dto.ProblemError{Status: http.StatusTeapot}, http.StatusTeapot, "I'm a teapot"},
		{"ProblemError title wins", &dto.ProblemError{Status: http.StatusBadRequest, Title: "Broken"}, http.StatusBadRequest, "Broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/compute?n=1", http.NoBody)
			got := dto.NewErrorResponse(r, tt.err)

			if got.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", got.Status, tt.wantStatus)
			}
			if got.Title != tt.wantTitle {
				t.Errorf("Title = %q, want %q", got.Title, tt.wantTitle)
			}
		})
	}
}

func TestNewErrorResponse_Fields(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/compute?n=1", http.NoBody)
	got := dto.NewErrorResponse(r, domain.ErrNotFound)

	if got.Type != "about:blank" {
		t.Errorf("Type = %q, want %q", got.Type, "about:blank")
	}
	if got.Instance != "/compute?n=1" {
		t.Errorf("Instance = %q, want %q", got.Instance, "/compute?n=1")
	}
	if got.Detail != domain.ErrNotFound.Error() {
		t.Errorf("Detail = %q, want %q", got.Detail, domain.ErrNotFound.Error())
	}
	if got.Errors != nil {
		t.Errorf("Errors = %v, want nil for non-validation error", got.Errors)
	}
}

func TestNewErrorResponse_ValidationErrorsSorted(t *testing.T) {
	t.Parallel()

	verr := &domain.ValidationError{Fields: map[string]string{
		"n":     "must be between 0 and 93",
		"debug": "unknown",
		"mode":  "invalid",
	}}

	r := httptest.NewRequest(http.MethodGet, "/compute", http.NoBody)
	got := dto.NewErrorResponse(r, verr)

	want := []string{"debug", "mode", "n"}
	if len(got.Errors) != len(want) {
		t.Fatalf("len(Errors) = %d, want %d", len(got.Errors), len(want))
	}
	for i, loc := range want {
		if got.Errors[i].Location != loc {
			t.Errorf("Errors[%d].Location = %q, want %q", i, got.Errors[i].Location, loc)
		}
	}
}

// --- ErrorResponse JSON tests ---

func TestErrorResponse_MarshalJSON_FlattensExtensions(t *testing.T) {
	t.Parallel()

	resp := dto.ErrorResponse{
		Type:   "about:blank",
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
		Extensions: map[string]any{
			"service_1": "down",
			"status":    "shadowed",
		},
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["service_1"] != "down" {
		t.Errorf("service_1 = %v, want down", got["service_1"])
	}
	if got["status"] != float64(http.StatusBadRequest) {
		t.Errorf("status = %v, want %d", got["status"], http.StatusBadRequest)
	}
	if _, ok := got["Extensions"]; ok {
		t.Error("Extensions serialized as a member")
	}
}

func TestErrorResponse_MarshalJSON_NoExtensions(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ErrorResponse{Type: "about:blank", Title: "Not Found", Status: 404})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `{"type":"about:blank","title":"Not Found","status":404}`; string(data) != want {
		t.Errorf("Marshal() = %s, want %s", data, want)
	}
}

// --- ProblemError tests ---

func TestProblemError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *dto.ProblemError
		want string
	}{
		{&dto.ProblemError{Status: 400, Title: "t", Detail: "d"}, "d"},
		{&dto.ProblemError{Status: 400, Title: "t"}, "t"},
		{&dto.ProblemError{Status: 400}, "Bad Request"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

// --- WriteErrorResponse tests ---

func TestWriteErrorResponse_ContentTypeAndStatus(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/compute", http.NoBody)

	dto.WriteErrorResponse(w, r, domain.ErrTimeout)

	if ct := w.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/problem+json")
	}
	if w.Code != http.StatusGatewayTimeout {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusGatewayTimeout)
	}
}

func TestWriteErrorResponse_ValidationBody(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/compute?n=-1", http.NoBody)

	dto.WriteErrorResponse(w, r, &domain.ValidationError{Fields: map[string]string{
		"n": "must be between 0 and 93",
	}})

	var resp dto.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if resp.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", resp.Status, http.StatusBadRequest)
	}
	if len(resp.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(resp.Errors))
	}
	if resp.Errors[0].Location != "n" {
		t.Errorf("Errors[0].Location = %q, want %q", resp.Errors[0].Location, "n")
	}
}

func TestWriteErrorResponse_ProblemError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/health/custom_error_test", http.NoBody)

	dto.WriteErrorResponse(w, r, &dto.ProblemError{
		Status:     http.StatusBadRequest,
		Detail:     "custom failure",
		Extensions: map[string]any{"matadata": map[string]string{"key": "value"}},
		Headers:    map[string]string{"Retry-After": "30"},
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("status code = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if got := w.Header().Get("Retry-After"); got != "30" {
		t.Errorf("Retry-After = %q, want %q", got, "30")
	}

	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["detail"] != "custom failure" {
		t.Errorf("detail = %v, want %q", body["detail"], "custom failure")
	}
	meta, ok := body["matadata"].(map[string]any)
	if !ok || meta["key"] != "value" {
		t.Errorf("matadata = %v, want {key: value}", body["matadata"])
	}
}
