package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/service"
	pkgerrors "github.com/luisapuppin/escala360/pkg/errors"
	"github.com/luisapuppin/escala360/pkg/response"
)

// SubstitutionHandler pedidos de substituição
type SubstitutionHandler struct {
	substitutionSvc service.SubstitutionService
}

// NewSubstitutionHandler cria o SubstitutionHandler
func NewSubstitutionHandler(substitutionSvc service.SubstitutionService) *SubstitutionHandler {
	return &SubstitutionHandler{substitutionSvc: substitutionSvc}
}

// ListSubstitutions lista pedidos, opcionalmente por status
// GET /api/v1/substituicoes?status=pendente
func (h *SubstitutionHandler) ListSubstitutions(c *gin.Context) {
	var req dto.SubstitutionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "status inválido (use pendente, aprovado ou rejeitado)")
		return
	}

	list, err := h.substitutionSvc.List(c.Request.Context(), &req)
	if err != nil {
		h.handleSubstitutionError(c, err)
		return
	}

	response.OK(c, list)
}

// GetSubstitution detalhe
// GET /api/v1/substituicoes/:id
func (h *SubstitutionHandler) GetSubstitution(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	sub, err := h.substitutionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleSubstitutionError(c, err)
		return
	}

	response.OK(c, sub)
}

// RequestSubstitution abre um pedido pendente
// POST /api/v1/substituicoes
func (h *SubstitutionHandler) RequestSubstitution(c *gin.Context) {
	var req dto.CreateSubstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	sub, err := h.substitutionSvc.Request(c.Request.Context(), &req)
	if err != nil {
		h.handleSubstitutionError(c, err)
		return
	}

	response.Created(c, sub)
}

// ApproveSubstitution aprova
// POST /api/v1/substituicoes/:id/aprovar
func (h *SubstitutionHandler) ApproveSubstitution(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	result, err := h.substitutionSvc.Approve(c.Request.Context(), id)
	if err != nil {
		h.handleSubstitutionError(c, err)
		return
	}

	response.OKWithMessage(c, result.Mensagem, result.Aviso, result.Substituicao)
}

// RejectSubstitution rejeita
// POST /api/v1/substituicoes/:id/rejeitar
func (h *SubstitutionHandler) RejectSubstitution(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	result, err := h.substitutionSvc.Reject(c.Request.Context(), id)
	if err != nil {
		h.handleSubstitutionError(c, err)
		return
	}

	response.OKWithMessage(c, result.Mensagem, result.Aviso, result.Substituicao)
}

// UpdateSubstitutionStatus muda o status pela máquina de estados
// PUT /api/v1/substituicoes/:id
func (h *SubstitutionHandler) UpdateSubstitutionStatus(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	var req dto.UpdateSubstitutionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	result, err := h.substitutionSvc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.handleSubstitutionError(c, err)
		return
	}

	response.OKWithMessage(c, result.Mensagem, result.Aviso, result.Substituicao)
}

func (h *SubstitutionHandler) handleSubstitutionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSubstitutionNotFound):
		response.NotFound(c, 20501, "substituição não encontrada")
	case errors.Is(err, service.ErrAssignmentNotFound):
		response.NotFound(c, 20401, "escala não encontrada")
	case errors.Is(err, service.ErrProfessionalNotFound):
		response.NotFound(c, 20101, "profissional não encontrado")
	case errors.Is(err, service.ErrShiftNotFound):
		response.NotFound(c, 20301, "plantão não encontrado")
	case errors.Is(err, service.ErrSelfSubstitution):
		response.BadRequest(c, 20502, err.Error())
	case errors.Is(err, service.ErrSubstitutionNotPending):
		response.BadRequest(c, 20503, err.Error())
	case errors.Is(err, service.ErrInvalidSubstitutionStatus):
		response.BadRequest(c, 20504, err.Error())
	case errors.Is(err, service.ErrAssignmentNotActive):
		response.BadRequest(c, 20505, err.Error())
	case errors.Is(err, service.ErrScheduleConflict):
		response.Conflict(c, 20506, err.Error())
	case errors.Is(err, pkgerrors.ErrOptimisticLock):
		response.Conflict(c, 20507, "a substituição foi alterada por outra operação, tente novamente")
	default:
		response.InternalError(c)
	}
}
