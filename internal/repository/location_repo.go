package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/luisapuppin/escala360/internal/model"
)

// LocationRepository acesso a dados de locais
type LocationRepository interface {
	Create(ctx context.Context, loc *model.Location) error
	GetByID(ctx context.Context, id int) (*model.Location, error)
	List(ctx context.Context, includeInactive bool) ([]model.Location, error)
	Upsert(ctx context.Context, locs []model.Location) error
}

type locationRepo struct {
	db *gorm.DB
}

// NewLocationRepo cria uma LocationRepository
func NewLocationRepo(db *gorm.DB) LocationRepository {
	return &locationRepo{db: db}
}

func (r *locationRepo) Create(ctx context.Context, loc *model.Location) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

func (r *locationRepo) GetByID(ctx context.Context, id int) (*model.Location, error) {
	var loc model.Location
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&loc).Error
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (r *locationRepo) List(ctx context.Context, includeInactive bool) ([]model.Location, error) {
	var locations []model.Location
	db := r.db.WithContext(ctx)

	if !includeInactive {
		db = db.Where("ativo = ?", true)
	}

	err := db.Order("id ASC").Find(&locations).Error
	return locations, err
}

func (r *locationRepo) Upsert(ctx context.Context, locs []model.Location) error {
	if len(locs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"nome", "endereco", "ativo"}),
		}).
		Create(&locs).Error
}

// ── Role ──

// RoleRepository acesso a dados de funções (referência, somente leitura pela API)
type RoleRepository interface {
	GetByID(ctx context.Context, id int) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	Upsert(ctx context.Context, roles []model.Role) error
}

type roleRepo struct {
	db *gorm.DB
}

// NewRoleRepo cria uma RoleRepository
func NewRoleRepo(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) GetByID(ctx context.Context, id int) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error
	return roles, err
}

func (r *roleRepo) Upsert(ctx context.Context, roles []model.Role) error {
	if len(roles) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"nome", "descricao"}),
		}).
		Create(&roles).Error
}
