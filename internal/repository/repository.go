package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository agrega todos os repositórios
type Repository struct {
	db *gorm.DB

	Role         RoleRepository
	Location     LocationRepository
	Professional ProfessionalRepository
	Shift        ShiftRepository
	Assignment   AssignmentRepository
	Substitution SubstitutionRepository
	Audit        AuditRepository
}

// NewRepository cria o agregado de repositórios
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:           db,
		Role:         NewRoleRepo(db),
		Location:     NewLocationRepo(db),
		Professional: NewProfessionalRepo(db),
		Shift:        NewShiftRepo(db),
		Assignment:   NewAssignmentRepo(db),
		Substitution: NewSubstitutionRepo(db),
		Audit:        NewAuditRepo(db),
	}
}

// Transaction executa fn numa transação do banco; fn recebe um agregado
// ligado à transação. Se fn retornar erro, tudo é desfeito.
//
// Um agregado montado sem conexão (dublês em memória) executa fn diretamente.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}

// Ping verifica a conexão com o banco
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ResetSequences reposiciona as sequências de identidade do PostgreSQL após
// inserções com id explícito (seed). Em outros dialetos não faz nada.
func (r *Repository) ResetSequences(ctx context.Context, tables ...string) error {
	if r.db == nil || r.db.Dialector.Name() != "postgres" {
		return nil
	}
	for _, t := range tables {
		err := r.db.WithContext(ctx).Exec(
			"SELECT setval(pg_get_serial_sequence(?, 'id'), COALESCE((SELECT MAX(id) FROM "+t+"), 0) + 1, false)", t,
		).Error
		if err != nil {
			return err
		}
	}
	return nil
}
