package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/model"
	"github.com/luisapuppin/escala360/internal/repository"
)

// EventPublisher publica eventos serializados em JSON no barramento
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// AuditService registro e consulta da trilha de auditoria
type AuditService interface {
	// Record grava o registro; falhas são apenas logadas
	Record(ctx context.Context, entity string, entityID int, action, actor string)
	List(ctx context.Context, req *dto.AuditListRequest) ([]dto.AuditEntryResponse, int64, error)
}

type auditService struct {
	repo      *repository.Repository
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewAuditService cria o AuditService. publisher pode ser nil.
func NewAuditService(repo *repository.Repository, publisher EventPublisher, logger *zap.Logger) AuditService {
	return &auditService{repo: repo, publisher: publisher, logger: logger, now: time.Now}
}

// ────────────────────── Record ──────────────────────

func (s *auditService) Record(ctx context.Context, entity string, entityID int, action, actor string) {
	entry := &model.AuditEntry{
		EntityType: entity,
		EntityID:   entityID,
		Action:     action,
		Actor:      actor,
		Timestamp:  s.now(),
	}
	if err := s.repo.Audit.Create(ctx, entry); err != nil {
		s.logger.Error("falha ao gravar auditoria",
			zap.String("entidade", entity),
			zap.Int("id_entidade", entityID),
			zap.String("acao", action),
			zap.Error(err),
		)
		return
	}

	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, toAuditEntryResponse(entry)); err != nil {
		s.logger.Warn("falha ao publicar evento de auditoria",
			zap.Int("id", entry.ID),
			zap.Error(err),
		)
	}
}

// ────────────────────── List ──────────────────────

func (s *auditService) List(ctx context.Context, req *dto.AuditListRequest) ([]dto.AuditEntryResponse, int64, error) {
	filter := repository.AuditFilter{
		EntityType: req.Entidade,
		EntityID:   req.IDEntidade,
	}
	entries, total, err := s.repo.Audit.List(ctx, filter, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("falha ao listar auditoria", zap.Error(err))
		return nil, 0, err
	}

	list := make([]dto.AuditEntryResponse, 0, len(entries))
	for i := range entries {
		list = append(list, toAuditEntryResponse(&entries[i]))
	}
	return list, total, nil
}
