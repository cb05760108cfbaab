package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luisapuppin/escala360/internal/model"
)

// ProfessionalRepository acesso a dados de profissionais
type ProfessionalRepository interface {
	Create(ctx context.Context, p *model.Professional) error
	GetByID(ctx context.Context, id int) (*model.Professional, error)
	List(ctx context.Context, onlyActive bool) ([]model.Professional, error)
	Update(ctx context.Context, p *model.Professional) error
	CountActive(ctx context.Context) (int64, error)
	Upsert(ctx context.Context, ps []model.Professional) error
}

type professionalRepo struct {
	db *gorm.DB
}

// NewProfessionalRepo cria uma ProfessionalRepository
func NewProfessionalRepo(db *gorm.DB) ProfessionalRepository {
	return &professionalRepo{db: db}
}

func (r *professionalRepo) Create(ctx context.Context, p *model.Professional) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *professionalRepo) GetByID(ctx context.Context, id int) (*model.Professional, error) {
	var p model.Professional
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *professionalRepo) List(ctx context.Context, onlyActive bool) ([]model.Professional, error) {
	var list []model.Professional
	db := r.db.WithContext(ctx)
	if onlyActive {
		db = db.Where("ativo = ?", true)
	}
	err := db.Order("id ASC").Find(&list).Error
	return list, err
}

func (r *professionalRepo) Update(ctx context.Context, p *model.Professional) error {
	return r.db.WithContext(ctx).
		Model(p).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"nome":                         p.Name,
			"cargo":                        p.JobTitle,
			"email":                        p.Email,
			"telefone":                     p.Phone,
			"ativo":                        p.Active,
			"carga_horaria_maxima_semanal": p.MaxWeeklyHours,
		}).Error
}

func (r *professionalRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Professional{}).
		Where("ativo = ?", true).
		Count(&n).Error
	return n, err
}

func (r *professionalRepo) Upsert(ctx context.Context, ps []model.Professional) error {
	if len(ps) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"nome", "cargo", "email", "telefone", "ativo", "carga_horaria_maxima_semanal"}),
		}).
		Create(&ps).Error
}
