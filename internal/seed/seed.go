// Package seed carrega os dados de demonstração. É idempotente: registros com
// os mesmos ids são sobrescritos.
package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/luisapuppin/escala360/internal/model"
	"github.com/luisapuppin/escala360/internal/repository"
)

// Roles funções de referência
func Roles() []model.Role {
	return []model.Role{
		{ID: 1, Name: "Médico", Description: "Profissional médico responsável por atendimentos"},
		{ID: 2, Name: "Enfermeiro", Description: "Profissional de enfermagem de nível superior"},
		{ID: 3, Name: "Técnico de Enfermagem", Description: "Profissional de enfermagem de nível técnico"},
		{ID: 4, Name: "Recepcionista", Description: "Profissional de atendimento ao público"},
	}
}

// Locations locais de referência
func Locations() []model.Location {
	return []model.Location{
		{ID: 1, Name: "Pronto Socorro", Address: "Av. Principal, 123 - Centro", Active: true},
		{ID: 2, Name: "UTI", Address: "Av. Principal, 123 - 2º andar", Active: true},
		{ID: 3, Name: "Enfermaria A", Address: "Av. Principal, 123 - Ala A", Active: true},
		{ID: 4, Name: "Enfermaria B", Address: "Av. Principal, 123 - Ala B", Active: true},
		{ID: 5, Name: "Ambulatório", Address: "Av. Principal, 123 - Térreo", Active: true},
	}
}

// Professionals profissionais de demonstração
func Professionals() []model.Professional {
	return []model.Professional{
		{ID: 1, Name: "Ana Souza", JobTitle: "Enfermeira", Email: "ana.souza@example.com", Phone: "11999990001", Active: true, MaxWeeklyHours: 40},
		{ID: 2, Name: "Carlos Lima", JobTitle: "Médico", Email: "carlos.lima@example.com", Phone: "11999990002", Active: true, MaxWeeklyHours: 40},
		{ID: 3, Name: "Beatriz Santos", JobTitle: "Técnico de Enfermagem", Email: "beatriz.santos@example.com", Phone: "11999990003", Active: true, MaxWeeklyHours: 40},
		{ID: 4, Name: "Daniel Oliveira", JobTitle: "Médico", Email: "daniel.oliveira@example.com", Phone: "11999990004", Active: true, MaxWeeklyHours: 40},
		{ID: 5, Name: "Fernanda Costa", JobTitle: "Enfermeira", Email: "fernanda.costa@example.com", Phone: "11999990005", Active: true, MaxWeeklyHours: 40},
	}
}

// Run grava funções, locais, profissionais, dois plantões em 2025-07-01,
// uma escala para cada e um pedido pendente de Carlos para Beatriz.
func Run(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	now := time.Now()

	shifts := []model.Shift{
		{ID: 1, Date: "2025-07-01", StartTime: "08:00", EndTime: "14:00", RoleID: 2, LocationID: 1},
		{ID: 2, Date: "2025-07-01", StartTime: "14:00", EndTime: "20:00", RoleID: 2, LocationID: 1},
	}
	assignments := []model.Assignment{
		{ID: 1, ShiftID: 1, ProfessionalID: 1, Status: model.AssignmentActive, AllocatedAt: now},
		{ID: 2, ShiftID: 2, ProfessionalID: 2, Status: model.AssignmentActive, AllocatedAt: now},
	}
	substitutions := []model.Substitution{
		{ID: 1, OriginalAssignmentID: 2, RequesterID: 2, SubstituteID: 3, RequestedAt: now, Status: model.SubstitutionPending},
	}
	for i := range assignments {
		assignments[i].Version = 1
	}
	for i := range substitutions {
		substitutions[i].Version = 1
	}

	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Role.Upsert(ctx, Roles()); err != nil {
			return fmt.Errorf("funções: %w", err)
		}
		if err := tx.Location.Upsert(ctx, Locations()); err != nil {
			return fmt.Errorf("locais: %w", err)
		}
		if err := tx.Professional.Upsert(ctx, Professionals()); err != nil {
			return fmt.Errorf("profissionais: %w", err)
		}
		if err := tx.Shift.Upsert(ctx, shifts); err != nil {
			return fmt.Errorf("plantões: %w", err)
		}
		if err := tx.Assignment.Upsert(ctx, assignments); err != nil {
			return fmt.Errorf("escalas: %w", err)
		}
		if err := tx.Substitution.Upsert(ctx, substitutions); err != nil {
			return fmt.Errorf("substituições: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("falha ao gravar dados de demonstração: %w", err)
	}

	if err := repo.ResetSequences(ctx, "funcoes", "locais", "profissionais", "plantoes", "escalas", "substituicoes"); err != nil {
		return fmt.Errorf("falha ao reposicionar sequências: %w", err)
	}

	// o pedido de demonstração entra na trilha uma única vez
	_, total, err := repo.Audit.List(ctx, repository.AuditFilter{EntityType: model.EntitySubstitution, EntityID: 1}, 0, 1)
	if err != nil {
		return err
	}
	if total == 0 {
		entry := &model.AuditEntry{
			EntityType: model.EntitySubstitution,
			EntityID:   1,
			Action:     "solicitado",
			Actor:      model.ActorSystem,
			Timestamp:  now,
		}
		if err := repo.Audit.Create(ctx, entry); err != nil {
			return err
		}
	}

	logger.Info("dados de demonstração carregados",
		zap.Int("profissionais", len(Professionals())),
		zap.Int("plantoes", len(shifts)),
		zap.Int("escalas", len(assignments)),
		zap.Int("substituicoes", len(substitutions)),
	)
	return nil
}
