package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luisapuppin/escala360/internal/model"
)

// ShiftRepository acesso a dados de plantões
type ShiftRepository interface {
	Create(ctx context.Context, s *model.Shift) error
	GetByID(ctx context.Context, id int) (*model.Shift, error)
	List(ctx context.Context) ([]model.Shift, error)
	Count(ctx context.Context) (int64, error)
	Upsert(ctx context.Context, shifts []model.Shift) error
}

type shiftRepo struct {
	db *gorm.DB
}

// NewShiftRepo cria uma ShiftRepository
func NewShiftRepo(db *gorm.DB) ShiftRepository {
	return &shiftRepo{db: db}
}

func (r *shiftRepo) Create(ctx context.Context, s *model.Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *shiftRepo) GetByID(ctx context.Context, id int) (*model.Shift, error) {
	var s model.Shift
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Location").
		Where("id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *shiftRepo) List(ctx context.Context) ([]model.Shift, error) {
	var shifts []model.Shift
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Location").
		Order("data ASC, hora_inicio ASC, id ASC").
		Find(&shifts).Error
	return shifts, err
}

func (r *shiftRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Shift{}).Count(&n).Error
	return n, err
}

func (r *shiftRepo) Upsert(ctx context.Context, shifts []model.Shift) error {
	if len(shifts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "hora_inicio", "hora_fim", "funcao_id", "local_id"}),
		}).
		Create(&shifts).Error
}
