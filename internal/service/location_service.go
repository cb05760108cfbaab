package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/model"
	"github.com/luisapuppin/escala360/internal/repository"
)

// ── Erros de dados de referência ──

var (
	ErrLocationNotFound = errors.New("local não encontrado")
	ErrRoleNotFound     = errors.New("função não encontrada")
)

// ReferenceService funções e locais
type ReferenceService interface {
	ListRoles(ctx context.Context) ([]dto.RoleResponse, error)
	ListLocations(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, error)
	CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
}

type referenceService struct {
	repo   *repository.Repository
	audit  AuditService
	logger *zap.Logger
}

// NewReferenceService cria o ReferenceService
func NewReferenceService(repo *repository.Repository, audit AuditService, logger *zap.Logger) ReferenceService {
	return &referenceService{repo: repo, audit: audit, logger: logger}
}

func (s *referenceService) ListRoles(ctx context.Context) ([]dto.RoleResponse, error) {
	roles, err := s.repo.Role.List(ctx)
	if err != nil {
		s.logger.Error("falha ao listar funções", zap.Error(err))
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(roles))
	for i := range roles {
		out = append(out, toRoleResponse(&roles[i]))
	}
	return out, nil
}

func (s *referenceService) ListLocations(ctx context.Context, req *dto.LocationListRequest) ([]dto.LocationResponse, error) {
	locations, err := s.repo.Location.List(ctx, req.IncluirInativos)
	if err != nil {
		s.logger.Error("falha ao listar locais", zap.Error(err))
		return nil, err
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for i := range locations {
		out = append(out, toLocationResponse(&locations[i]))
	}
	return out, nil
}

func (s *referenceService) CreateLocation(ctx context.Context, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	loc := &model.Location{
		Name:    req.Nome,
		Address: req.Endereco,
		Active:  true,
	}
	if err := s.repo.Location.Create(ctx, loc); err != nil {
		s.logger.Error("falha ao criar local", zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, model.EntityLocation, loc.ID, "criado", model.ActorSystem)

	resp := toLocationResponse(loc)
	return &resp, nil
}
