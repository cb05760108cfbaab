package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/service"
	"github.com/luisapuppin/escala360/pkg/response"
)

// ShiftHandler plantões
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler cria o ShiftHandler
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// ListShifts lista os plantões por data e horário
// GET /api/v1/plantoes
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	shifts, err := h.shiftSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, shifts)
}

// GetShift detalhe
// GET /api/v1/plantoes/:id
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	shift, err := h.shiftSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.OK(c, shift)
}

// CreateShift cria um plantão
// POST /api/v1/plantoes
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req dto.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	shift, err := h.shiftSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleShiftError(c, err)
		return
	}

	response.Created(c, shift)
}

func (h *ShiftHandler) handleShiftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 20301, "plantão não encontrado")
	case errors.Is(err, service.ErrInvalidShiftInterval):
		response.BadRequest(c, 20302, err.Error())
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 20303, err.Error())
	case errors.Is(err, service.ErrRoleNotFound):
		response.NotFound(c, 20201, "função não encontrada")
	case errors.Is(err, service.ErrLocationNotFound):
		response.NotFound(c, 20202, "local não encontrado")
	default:
		response.InternalError(c)
	}
}
