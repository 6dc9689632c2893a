package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vaultpass/passmeter-go/internal/model"
	"github.com/vaultpass/passmeter-go/internal/service"
)

// AnalyzerHandler handles HTTP requests for password analysis.
type AnalyzerHandler struct {
	service  *service.AnalyzerService
	validate *validator.Validate
}

// NewAnalyzerHandler creates a new AnalyzerHandler.
func NewAnalyzerHandler(svc *service.AnalyzerService, v *validator.Validate) *AnalyzerHandler {
	if v == nil {
		v = NewValidator()
	}
	return &AnalyzerHandler{service: svc, validate: v}
}

// HandleAnalyze handles POST /api/v1/analyze requests. An empty password is
// valid and yields the placeholder analysis.
func (h *AnalyzerHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(validationMessage(err)))
		return
	}

	writeJSON(w, http.StatusOK, h.service.Analyze(r.Context(), req))
}
