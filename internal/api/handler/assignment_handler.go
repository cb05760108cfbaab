package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/service"
	"github.com/luisapuppin/escala360/pkg/response"
)

// AssignmentHandler escalas
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler cria o AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// ListAssignments lista escalas; processadas=true devolve a visão processada
// GET /api/v1/escalas
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	var req dto.AssignmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	if req.Processadas {
		h.listProcessed(c, req.Agrupar)
		return
	}

	list, err := h.assignmentSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, list)
}

// ListProcessed visão processada; agrupar=data agrupa pela data do plantão
// GET /api/v1/escalas/processadas
func (h *AssignmentHandler) ListProcessed(c *gin.Context) {
	var req dto.AssignmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	h.listProcessed(c, req.Agrupar)
}

func (h *AssignmentHandler) listProcessed(c *gin.Context, groupBy string) {
	if groupBy == "data" {
		groups, err := h.assignmentSvc.ListProcessedByDate(c.Request.Context())
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, groups)
		return
	}

	rows, err := h.assignmentSvc.ListProcessed(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, rows)
}

// CreateAssignment aloca um profissional num plantão
// POST /api/v1/escalas
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	a, err := h.assignmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleAssignmentError(c, err)
		return
	}

	response.Created(c, a)
}

func (h *AssignmentHandler) handleAssignmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrScheduleConflict):
		response.Conflict(c, 20403, err.Error())
	case errors.Is(err, service.ErrInvalidAssignmentStatus):
		response.BadRequest(c, 20402, err.Error())
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 20301, "plantão não encontrado")
	case errors.Is(err, service.ErrProfessionalNotFound):
		response.NotFound(c, 20101, "profissional não encontrado")
	default:
		response.InternalError(c)
	}
}
