package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/model"
	"github.com/luisapuppin/escala360/internal/repository"
)

// ── Erros do módulo de plantões ──

var (
	ErrShiftNotFound        = errors.New("plantão não encontrado")
	ErrInvalidShiftInterval = errors.New("horário inválido: o início deve ser anterior ao fim no mesmo dia")
)

// ShiftService cadastro de plantões
type ShiftService interface {
	Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	GetByID(ctx context.Context, id int) (*dto.ShiftResponse, error)
	List(ctx context.Context) ([]dto.ShiftResponse, error)
}

type shiftService struct {
	repo   *repository.Repository
	audit  AuditService
	cache  Cache
	logger *zap.Logger
}

// NewShiftService cria o ShiftService
func NewShiftService(repo *repository.Repository, audit AuditService, cache Cache, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, audit: audit, cache: cache, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	date, start, end, err := normalizeShiftTimes(req.Data, req.HoraInicio, req.HoraFim)
	if err != nil {
		return nil, err
	}

	role, err := s.repo.Role.GetByID(ctx, req.FuncaoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		s.logger.Error("falha ao buscar função", zap.Error(err))
		return nil, err
	}
	loc, err := s.repo.Location.GetByID(ctx, req.LocalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLocationNotFound
		}
		s.logger.Error("falha ao buscar local", zap.Error(err))
		return nil, err
	}

	shift := &model.Shift{
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		RoleID:     role.ID,
		LocationID: loc.ID,
	}
	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("falha ao criar plantão", zap.Error(err))
		return nil, err
	}
	shift.Role = role
	shift.Location = loc

	s.audit.Record(ctx, model.EntityShift, shift.ID, "criado", model.ActorSystem)
	invalidateDashboard(ctx, s.cache, s.logger)

	resp := toShiftResponse(shift)
	return &resp, nil
}

// ────────────────────── GetByID / List ──────────────────────

func (s *shiftService) GetByID(ctx context.Context, id int) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("falha ao buscar plantão", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	resp := toShiftResponse(shift)
	return &resp, nil
}

func (s *shiftService) List(ctx context.Context) ([]dto.ShiftResponse, error) {
	shifts, err := s.repo.Shift.List(ctx)
	if err != nil {
		s.logger.Error("falha ao listar plantões", zap.Error(err))
		return nil, err
	}
	out := make([]dto.ShiftResponse, 0, len(shifts))
	for i := range shifts {
		out = append(out, toShiftResponse(&shifts[i]))
	}
	return out, nil
}

// normalizeShiftTimes valida e devolve data e horários no formato canônico
// (AAAA-MM-DD, HH:MM com zero à esquerda)
func normalizeShiftTimes(date, start, end string) (string, string, string, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", "", "", ErrInvalidDate
	}
	st, err := time.Parse(timeLayout, start)
	if err != nil {
		return "", "", "", ErrInvalidShiftInterval
	}
	et, err := time.Parse(timeLayout, end)
	if err != nil {
		return "", "", "", ErrInvalidShiftInterval
	}
	if !st.Before(et) {
		return "", "", "", ErrInvalidShiftInterval
	}
	return d.Format(dateLayout), st.Format(timeLayout), et.Format(timeLayout), nil
}
