package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/luisapuppin/escala360/internal/model"
)

// AuditFilter filtros da listagem de auditoria; campos zero são ignorados
type AuditFilter struct {
	EntityType string
	EntityID   int
}

// AuditRepository acesso à trilha de auditoria (somente inserção e leitura)
type AuditRepository interface {
	Create(ctx context.Context, e *model.AuditEntry) error
	List(ctx context.Context, filter AuditFilter, offset, limit int) ([]model.AuditEntry, int64, error)
}

type auditRepo struct {
	db *gorm.DB
}

// NewAuditRepo cria uma AuditRepository
func NewAuditRepo(db *gorm.DB) AuditRepository {
	return &auditRepo{db: db}
}

func (r *auditRepo) Create(ctx context.Context, e *model.AuditEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *auditRepo) List(ctx context.Context, filter AuditFilter, offset, limit int) ([]model.AuditEntry, int64, error) {
	var entries []model.AuditEntry
	var total int64

	db := r.db.WithContext(ctx).Model(&model.AuditEntry{})
	if filter.EntityType != "" {
		db = db.Where("entidade = ?", filter.EntityType)
	}
	if filter.EntityID > 0 {
		db = db.Where("id_entidade = ?", filter.EntityID)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("data_hora DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	return entries, total, err
}
