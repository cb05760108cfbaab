package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/service"
	"github.com/luisapuppin/escala360/pkg/response"
)

// DashboardHandler resumo do painel
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler cria o DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// GetStats GET /api/v1/dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardSvc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}

// AuditHandler trilha de auditoria
type AuditHandler struct {
	auditSvc service.AuditService
}

// NewAuditHandler cria o AuditHandler
func NewAuditHandler(auditSvc service.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

// ListAudit registros mais recentes primeiro, paginados
// GET /api/v1/auditoria?entidade=&id_entidade=&page=&page_size=
func (h *AuditHandler) ListAudit(c *gin.Context) {
	var req dto.AuditListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, codeInvalidParams, "parâmetros inválidos")
		return
	}

	list, total, err := h.auditSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}
