package service

import (
	"context"
	"errors"
	"math"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/model"
	"github.com/luisapuppin/escala360/internal/repository"
)

// ── Erros do módulo de profissionais ──

var (
	ErrProfessionalNotFound = errors.New("profissional não encontrado")
	ErrInvalidDate          = errors.New("data inválida, use o formato AAAA-MM-DD")
)

// ProfessionalService cadastro de profissionais e carga horária
type ProfessionalService interface {
	Create(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ProfessionalResponse, error)
	List(ctx context.Context, req *dto.ProfessionalListRequest) ([]dto.ProfessionalResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error)
	// Workload carga horária da semana que contém date (vazio = hoje)
	Workload(ctx context.Context, id int, date string) (*dto.WorkloadResponse, error)
}

type professionalService struct {
	repo   *repository.Repository
	audit  AuditService
	cache  Cache
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

// NewProfessionalService cria o ProfessionalService
func NewProfessionalService(repo *repository.Repository, audit AuditService, cache Cache, loc *time.Location, logger *zap.Logger) ProfessionalService {
	if loc == nil {
		loc = time.UTC
	}
	return &professionalService{repo: repo, audit: audit, cache: cache, loc: loc, logger: logger, now: time.Now}
}

// ────────────────────── Create ──────────────────────

func (s *professionalService) Create(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	p := &model.Professional{
		Name:           req.Nome,
		JobTitle:       req.Cargo,
		Email:          req.Email,
		Phone:          req.Telefone,
		Active:         true,
		MaxWeeklyHours: req.CargaHorariaMaximaSemanal,
	}
	if err := s.repo.Professional.Create(ctx, p); err != nil {
		s.logger.Error("falha ao criar profissional", zap.Error(err))
		return nil, err
	}

	s.audit.Record(ctx, model.EntityProfessional, p.ID, "criado", model.ActorSystem)
	invalidateDashboard(ctx, s.cache, s.logger)

	resp := toProfessionalResponse(p)
	return &resp, nil
}

// ────────────────────── GetByID ──────────────────────

func (s *professionalService) GetByID(ctx context.Context, id int) (*dto.ProfessionalResponse, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProfessionalResponse(p)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *professionalService) List(ctx context.Context, req *dto.ProfessionalListRequest) ([]dto.ProfessionalResponse, error) {
	list, err := s.repo.Professional.List(ctx, req.Ativo)
	if err != nil {
		s.logger.Error("falha ao listar profissionais", zap.Error(err))
		return nil, err
	}
	out := make([]dto.ProfessionalResponse, 0, len(list))
	for i := range list {
		out = append(out, toProfessionalResponse(&list[i]))
	}
	return out, nil
}

// ────────────────────── Update ──────────────────────

func (s *professionalService) Update(ctx context.Context, id int, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalResponse, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		p.Name = *req.Nome
	}
	if req.Cargo != nil {
		p.JobTitle = *req.Cargo
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Telefone != nil {
		p.Phone = *req.Telefone
	}
	if req.Ativo != nil {
		p.Active = *req.Ativo
	}
	if req.CargaHorariaMaximaSemanal != nil {
		p.MaxWeeklyHours = *req.CargaHorariaMaximaSemanal
	}

	if err := s.repo.Professional.Update(ctx, p); err != nil {
		s.logger.Error("falha ao atualizar profissional", zap.Int("id", id), zap.Error(err))
		return nil, err
	}

	action := "atualizado"
	if req.Ativo != nil && !*req.Ativo {
		action = "desativado"
	}
	s.audit.Record(ctx, model.EntityProfessional, p.ID, action, model.ActorSystem)
	invalidateDashboard(ctx, s.cache, s.logger)

	resp := toProfessionalResponse(p)
	return &resp, nil
}

// ────────────────────── Workload ──────────────────────

func (s *professionalService) Workload(ctx context.Context, id int, date string) (*dto.WorkloadResponse, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if date == "" {
		date = s.now().In(s.loc).Format(dateLayout)
	}
	from, to, err := WeekBounds(date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	assignments, err := s.repo.Assignment.ListByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("falha ao listar escalas da semana", zap.Error(err))
		return nil, err
	}
	approved, err := s.repo.Substitution.List(ctx, model.SubstitutionApproved)
	if err != nil {
		s.logger.Error("falha ao listar substituições aprovadas", zap.Error(err))
		return nil, err
	}

	hours, count := WeeklyHoursWorked(p.ID, date, assignments, approved)
	resp := &dto.WorkloadResponse{
		ProfissionalID:   p.ID,
		SemanaInicio:     from,
		SemanaFim:        to,
		HorasTrabalhadas: hours,
		CargaMaxima:      p.MaxWeeklyHours,
		PlantoesSemana:   count,
		Diferenca:        float64(p.MaxWeeklyHours) - hours,
	}
	if p.MaxWeeklyHours > 0 {
		resp.Percentual = math.Round(hours/float64(p.MaxWeeklyHours)*1000) / 10
	}
	return resp, nil
}

func (s *professionalService) get(ctx context.Context, id int) (*model.Professional, error) {
	p, err := s.repo.Professional.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("falha ao buscar profissional", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}
