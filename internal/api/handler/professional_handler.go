package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/service"
	"github.com/luisapuppin/escala360/pkg/response"
)

// ProfessionalHandler profissionais
type ProfessionalHandler struct {
	professionalSvc service.ProfessionalService
	exportSvc       service.ExportService
}

// NewProfessionalHandler cria o ProfessionalHandler
func NewProfessionalHandler(professionalSvc service.ProfessionalService, exportSvc service.ExportService) *ProfessionalHandler {
	return &ProfessionalHandler{professionalSvc: professionalSvc, exportSvc: exportSvc}
}

// ListProfessionals lista profissionais
// GET /api/v1/profissionais?ativo=true
func (h *ProfessionalHandler) ListProfessionals(c *gin.Context) {
	var req dto.ProfessionalListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	list, err := h.professionalSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, list)
}

// GetProfessional detalhe
// GET /api/v1/profissionais/:id
func (h *ProfessionalHandler) GetProfessional(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	p, err := h.professionalSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleProfessionalError(c, err)
		return
	}

	response.OK(c, p)
}

// CreateProfessional cadastra um profissional
// POST /api/v1/profissionais
func (h *ProfessionalHandler) CreateProfessional(c *gin.Context) {
	var req dto.CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	p, err := h.professionalSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleProfessionalError(c, err)
		return
	}

	response.Created(c, p)
}

// UpdateProfessional atualiza ou desativa
// PUT /api/v1/profissionais/:id
func (h *ProfessionalHandler) UpdateProfessional(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	p, err := h.professionalSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleProfessionalError(c, err)
		return
	}

	response.OK(c, p)
}

// GetWorkload carga horária da semana
// GET /api/v1/profissionais/:id/carga-horaria?data=YYYY-MM-DD
func (h *ProfessionalHandler) GetWorkload(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	var req dto.WorkloadRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "data inválida, use o formato AAAA-MM-DD")
		return
	}

	w, err := h.professionalSvc.Workload(c.Request.Context(), id, req.Data)
	if err != nil {
		h.handleProfessionalError(c, err)
		return
	}

	response.OK(c, w)
}

// GetAgenda agenda iCalendar dos plantões efetivos
// GET /api/v1/profissionais/:id/agenda.ics
func (h *ProfessionalHandler) GetAgenda(c *gin.Context) {
	id, ok := MustGetID(c)
	if !ok {
		return
	}

	data, filename, err := h.exportSvc.ProfessionalAgenda(c.Request.Context(), id)
	if err != nil {
		h.handleProfessionalError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

func (h *ProfessionalHandler) handleProfessionalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProfessionalNotFound):
		response.NotFound(c, 20101, "profissional não encontrado")
	case errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, 20102, err.Error())
	default:
		response.InternalError(c)
	}
}
