package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/demo-bd/internal/domain"
)

// ErrorResponse represents an RFC 9457 Problem Details response. Extensions
// are serialized as top-level members next to the standard ones.
type ErrorResponse struct {
	Type       string         `json:"type"`
	Title      string         `json:"title"`
	Status     int            `json:"status"`
	Detail     string         `json:"detail,omitempty"`
	Instance   string         `json:"instance,omitempty"`
	Errors     []ErrorDetail  `json:"errors,omitempty"`
	Extensions map[string]any `json:"-"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// MarshalJSON flattens Extensions into the problem object. Standard members
// win over extensions with the same name.
func (e ErrorResponse) MarshalJSON() ([]byte, error) {
	type plain ErrorResponse
	base, err := json.Marshal(plain(e))
	if err != nil || len(e.Extensions) == 0 {
		return base, err
	}

	members := make(map[string]json.RawMessage, len(e.Extensions)+6)
	for k, v := range e.Extensions {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		members[k] = raw
	}
	var std map[string]json.RawMessage
	if err := json.Unmarshal(base, &std); err != nil {
		return nil, err
	}
	maps.Copy(members, std)
	return json.Marshal(members)
}

// ProblemError is an error that carries its own problem response: status,
// detail, extension members and response headers.
type ProblemError struct {
	Status     int
	Title      string
	Detail     string
	Extensions map[string]any
	Headers    map[string]string
}

func (e *ProblemError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Title != "" {
		return e.Title
	}
	return http.StatusText(e.Status)
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// The request is used to populate the instance field with the request URI.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := domainErrorToStatus(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   err.Error(),
		Instance: r.RequestURI,
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationFieldsToDetails(verr.Fields)
	}

	var perr *ProblemError
	if errors.As(err, &perr) {
		if perr.Title != "" {
			resp.Title = perr.Title
		}
		resp.Extensions = maps.Clone(perr.Extensions)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error. It sets the Content-Type to application/problem+json, writes the
// appropriate HTTP status code, and marshals the error body as JSON. Headers
// of a ProblemError are copied to the response.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	var perr *ProblemError
	if errors.As(err, &perr) {
		for k, v := range perr.Headers {
			w.Header().Set(k, v)
		}
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
func domainErrorToStatus(err error) int {
	var perr *ProblemError
	switch {
	case errors.As(err, &perr) && perr.Status != 0:
		return perr.Status
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, domain.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// validationFieldsToDetails converts domain validation fields to ErrorDetail
// entries sorted by field.
func validationFieldsToDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for _, field := range slices.Sorted(maps.Keys(fields)) {
		details = append(details, ErrorDetail{
			Location: field,
			Message:  fields[field],
		})
	}
	return details
}
