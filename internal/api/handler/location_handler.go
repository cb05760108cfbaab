package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/service"
	"github.com/luisapuppin/escala360/pkg/response"
)

// ReferenceHandler funções e locais
type ReferenceHandler struct {
	referenceSvc service.ReferenceService
}

// NewReferenceHandler cria o ReferenceHandler
func NewReferenceHandler(referenceSvc service.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{referenceSvc: referenceSvc}
}

// ListRoles lista as funções
// GET /api/v1/funcoes
func (h *ReferenceHandler) ListRoles(c *gin.Context) {
	roles, err := h.referenceSvc.ListRoles(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, roles)
}

// ListLocations lista os locais
// GET /api/v1/locais?incluir_inativos=true
func (h *ReferenceHandler) ListLocations(c *gin.Context) {
	var req dto.LocationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	locations, err := h.referenceSvc.ListLocations(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, locations)
}

// CreateLocation cria um local
// POST /api/v1/locais
func (h *ReferenceHandler) CreateLocation(c *gin.Context) {
	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	location, err := h.referenceSvc.CreateLocation(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, location)
}
