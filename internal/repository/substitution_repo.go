package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luisapuppin/escala360/internal/model"
	pkgerrors "github.com/luisapuppin/escala360/pkg/errors"
)

// SubstitutionRepository acesso a dados de substituições
type SubstitutionRepository interface {
	Create(ctx context.Context, s *model.Substitution) error
	GetByID(ctx context.Context, id int) (*model.Substitution, error)
	// List lista substituições; status vazio retorna todas
	List(ctx context.Context, status string) ([]model.Substitution, error)
	UpdateStatus(ctx context.Context, s *model.Substitution, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	Upsert(ctx context.Context, list []model.Substitution) error
}

type substitutionRepo struct {
	db *gorm.DB
}

// NewSubstitutionRepo cria uma SubstitutionRepository
func NewSubstitutionRepo(db *gorm.DB) SubstitutionRepository {
	return &substitutionRepo{db: db}
}

func (r *substitutionRepo) Create(ctx context.Context, s *model.Substitution) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *substitutionRepo) GetByID(ctx context.Context, id int) (*model.Substitution, error) {
	var s model.Substitution
	err := r.db.WithContext(ctx).
		Preload("OriginalAssignment").
		Preload("OriginalAssignment.Shift").
		Preload("Requester").
		Preload("Substitute").
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *substitutionRepo) List(ctx context.Context, status string) ([]model.Substitution, error) {
	var list []model.Substitution
	db := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Substitute")
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("id ASC").Find(&list).Error
	return list, err
}

// UpdateStatus troca o status com trava otimista pela coluna version
func (r *substitutionRepo) UpdateStatus(ctx context.Context, s *model.Substitution, status string) error {
	oldVersion := s.Version
	result := r.db.WithContext(ctx).
		Model(&model.Substitution{}).
		Where("id = ? AND version = ?", s.ID, oldVersion).
		Updates(map[string]interface{}{
			"status":  status,
			"version": oldVersion + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.ErrOptimisticLock
	}
	s.Status = status
	s.Version = oldVersion + 1
	return nil
}

func (r *substitutionRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Substitution{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *substitutionRepo) Upsert(ctx context.Context, list []model.Substitution) error {
	if len(list) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"escala_original_id", "profissional_solicitante_id", "profissional_substituto_id",
				"data_solicitacao", "status",
			}),
		}).
		Create(&list).Error
}
