package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luisapuppin/escala360/internal/model"
	pkgerrors "github.com/luisapuppin/escala360/pkg/errors"
)

// AssignmentRepository acesso a dados de escalas
type AssignmentRepository interface {
	Create(ctx context.Context, a *model.Assignment) error
	GetByID(ctx context.Context, id int) (*model.Assignment, error)
	List(ctx context.Context) ([]model.Assignment, error)
	// ListByDateRange escalas cujos plantões caem em [from, to] (YYYY-MM-DD, inclusivo)
	ListByDateRange(ctx context.Context, from, to string) ([]model.Assignment, error)
	UpdateStatus(ctx context.Context, a *model.Assignment, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	Upsert(ctx context.Context, list []model.Assignment) error
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo cria uma AssignmentRepository
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, a *model.Assignment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id int) (*model.Assignment, error) {
	var a model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Shift.Role").
		Preload("Shift.Location").
		Preload("Professional").
		Where("id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepo) List(ctx context.Context) ([]model.Assignment, error) {
	var list []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Shift.Role").
		Preload("Shift.Location").
		Preload("Professional").
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *assignmentRepo) ListByDateRange(ctx context.Context, from, to string) ([]model.Assignment, error) {
	var list []model.Assignment
	err := r.db.WithContext(ctx).
		Preload("Shift.Role").
		Preload("Shift.Location").
		Preload("Professional").
		Joins("JOIN plantoes ON plantoes.id = escalas.plantao_id").
		Where("plantoes.data >= ? AND plantoes.data <= ?", from, to).
		Order("escalas.id ASC").
		Find(&list).Error
	return list, err
}

// UpdateStatus troca o status com trava otimista pela coluna version
func (r *assignmentRepo) UpdateStatus(ctx context.Context, a *model.Assignment, status string) error {
	oldVersion := a.Version
	result := r.db.WithContext(ctx).
		Model(&model.Assignment{}).
		Where("id = ? AND version = ?", a.ID, oldVersion).
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
	a.Status = status
	a.Version = oldVersion + 1
	return nil
}

func (r *assignmentRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Assignment{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *assignmentRepo) Upsert(ctx context.Context, list []model.Assignment) error {
	if len(list) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"plantao_id", "profissional_id", "status", "data_alocacao"}),
		}).
		Create(&list).Error
}
