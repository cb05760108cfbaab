package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luisapuppin/escala360/config"
	"github.com/luisapuppin/escala360/internal/api/handler"
	"github.com/luisapuppin/escala360/internal/api/middleware"
)

// Pinger verificação de saúde do armazenamento
type Pinger interface {
	Ping(ctx context.Context) error
}

// Setup inicializa o engine Gin com todas as rotas.
// limiter pode ser nil (Redis desabilitado); nesse caso não há rate limit.
func Setup(cfg *config.Config, h *handler.Handler, store Pinger, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── middleware global ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── saúde ──
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := store.Ping(ctx); err != nil {
			logger.Warn("health check falhou", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "indisponivel"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(limiter, cfg.Server.RateLimit.Limit, cfg.Server.RateLimit.Window))
	{
		profissionais := v1.Group("/profissionais")
		{
			profissionais.GET("", h.Professional.ListProfessionals)
			profissionais.POST("", h.Professional.CreateProfessional)
			profissionais.GET("/:id", h.Professional.GetProfessional)
			profissionais.PUT("/:id", h.Professional.UpdateProfessional)
			profissionais.GET("/:id/carga-horaria", h.Professional.GetWorkload)
			profissionais.GET("/:id/agenda.ics", h.Professional.GetAgenda)
		}

		v1.GET("/funcoes", h.Reference.ListRoles)

		locais := v1.Group("/locais")
		{
			locais.GET("", h.Reference.ListLocations)
			locais.POST("", h.Reference.CreateLocation)
		}

		plantoes := v1.Group("/plantoes")
		{
			plantoes.GET("", h.Shift.ListShifts)
			plantoes.POST("", h.Shift.CreateShift)
			plantoes.GET("/:id", h.Shift.GetShift)
		}

		escalas := v1.Group("/escalas")
		{
			escalas.GET("", h.Assignment.ListAssignments)
			escalas.POST("", h.Assignment.CreateAssignment)
			escalas.GET("/processadas", h.Assignment.ListProcessed)
		}

		substituicoes := v1.Group("/substituicoes")
		{
			substituicoes.GET("", h.Substitution.ListSubstitutions)
			substituicoes.POST("", h.Substitution.RequestSubstitution)
			substituicoes.GET("/:id", h.Substitution.GetSubstitution)
			substituicoes.PUT("/:id", h.Substitution.UpdateSubstitutionStatus)
			substituicoes.POST("/:id/aprovar", h.Substitution.ApproveSubstitution)
			substituicoes.POST("/:id/rejeitar", h.Substitution.RejectSubstitution)
		}

		v1.GET("/dashboard/stats", h.Dashboard.GetStats)
		v1.GET("/auditoria", h.Audit.ListAudit)
		v1.GET("/export/escalas", h.Export.ExportAssignments)
	}

	return r
}
