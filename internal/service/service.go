package service

import (
	"go.uber.org/zap"

	"github.com/luisapuppin/escala360/config"
	"github.com/luisapuppin/escala360/internal/repository"
)

// Service agrega todos os serviços
type Service struct {
	Audit        AuditService
	Professional ProfessionalService
	Reference    ReferenceService
	Shift        ShiftService
	Assignment   AssignmentService
	Substitution SubstitutionService
	Dashboard    DashboardService
	Export       ExportService
}

// NewService monta os serviços. cache e publisher podem ser nil
// (Redis ou RabbitMQ desabilitados).
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	cache Cache,
	publisher EventPublisher,
	logger *zap.Logger,
) *Service {
	loc := cfg.Schedule.Location()
	audit := NewAuditService(repo, publisher, logger)

	return &Service{
		Audit:        audit,
		Professional: NewProfessionalService(repo, audit, cache, loc, logger),
		Reference:    NewReferenceService(repo, audit, logger),
		Shift:        NewShiftService(repo, audit, cache, logger),
		Assignment:   NewAssignmentService(repo, audit, cache, logger),
		Substitution: NewSubstitutionService(repo, audit, cache, logger),
		Dashboard: NewDashboardService(repo, cache, DashboardOptions{
			Location:      loc,
			UpcomingDays:  cfg.Schedule.UpcomingDays,
			UpcomingLimit: cfg.Schedule.UpcomingLimit,
			CacheTTL:      cfg.Redis.DashboardTTL,
		}, logger),
		Export: NewExportService(repo, loc, logger),
	}
}
