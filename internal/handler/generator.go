package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/vaultpass/passmeter-go/internal/model"
	"github.com/vaultpass/passmeter-go/internal/service"
)

// GeneratorHandler handles HTTP requests for password generation.
type GeneratorHandler struct {
	service  *service.GeneratorService
	validate *validator.Validate
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService, v *validator.Validate) *GeneratorHandler {
	if v == nil {
		v = NewValidator()
	}
	return &GeneratorHandler{service: svc, validate: v}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse(validationMessage(err)))
		return
	}

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
