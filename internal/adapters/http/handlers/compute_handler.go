package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen11/demo-bd/internal/adapters/http/dto"
	"github.com/jsamuelsen11/demo-bd/internal/domain"
	"github.com/jsamuelsen11/demo-bd/internal/ports"
)

// DefaultComputeN is used when the n query parameter is absent.
const DefaultComputeN = 42

// ComputeHandler handles GET /compute.
type ComputeHandler struct {
	svc      ports.ComputeService
	validate *validator.Validate
	rule     string
}

// NewComputeHandler creates a ComputeHandler accepting n in [0, maxN].
func NewComputeHandler(svc ports.ComputeService, maxN int) *ComputeHandler {
	return &ComputeHandler{
		svc:      svc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		rule:     fmt.Sprintf("min=0,max=%d", maxN),
	}
}

// Compute handles GET /compute?n=42 and responds with the n-th Fibonacci
// number as a bare JSON number.
func (h *ComputeHandler) Compute(w http.ResponseWriter, r *http.Request) {
	n, err := h.parseN(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.svc.Fibonacci(r.Context(), n)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (h *ComputeHandler) parseN(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return DefaultComputeN, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.ValidationError{Fields: map[string]string{"n": "must be an integer"}}
	}

	if err := h.validate.Var(n, h.rule); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return 0, &domain.ValidationError{Fields: map[string]string{"n": ruleMessage(verrs[0])}}
		}
		return 0, fmt.Errorf("validating n: %w", err)
	}
	return n, nil
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
