package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/model"
	"github.com/luisapuppin/escala360/internal/repository"
)

// DashboardCacheKey chave do resumo do painel no cache
const DashboardCacheKey = "escala360:dashboard:stats"

// Cache armazenamento de valores JSON com expiração
type Cache interface {
	// GetJSON decodifica o valor em dst; false quando a chave não existe
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// DashboardOptions janela de próximos plantões e cache do resumo
type DashboardOptions struct {
	Location      *time.Location
	UpcomingDays  int
	UpcomingLimit int
	CacheTTL      time.Duration
}

// DashboardService resumo do painel
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	cache  Cache
	opts   DashboardOptions
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService cria o DashboardService. cache pode ser nil.
func NewDashboardService(repo *repository.Repository, cache Cache, opts DashboardOptions, logger *zap.Logger) DashboardService {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &dashboardService{repo: repo, cache: cache, opts: opts, logger: logger, now: time.Now}
}

// ════════════════════════════════════════════════════════════
// Stats
// ════════════════════════════════════════════════════════════

func (s *dashboardService) Stats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if s.cache != nil {
		var cached dto.DashboardStatsResponse
		hit, err := s.cache.GetJSON(ctx, DashboardCacheKey, &cached)
		if err != nil {
			s.logger.Warn("falha ao ler cache do painel", zap.Error(err))
		} else if hit {
			return &cached, nil
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.opts.CacheTTL > 0 {
		if err := s.cache.SetJSON(ctx, DashboardCacheKey, stats, s.opts.CacheTTL); err != nil {
			s.logger.Warn("falha ao gravar cache do painel", zap.Error(err))
		}
	}
	return stats, nil
}

func (s *dashboardService) compute(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	professionals, err := s.repo.Professional.CountActive(ctx)
	if err != nil {
		s.logger.Error("falha ao contar profissionais", zap.Error(err))
		return nil, err
	}
	shiftCount, err := s.repo.Shift.Count(ctx)
	if err != nil {
		s.logger.Error("falha ao contar plantões", zap.Error(err))
		return nil, err
	}
	activeAssignments, err := s.repo.Assignment.CountByStatus(ctx, model.AssignmentActive)
	if err != nil {
		s.logger.Error("falha ao contar escalas", zap.Error(err))
		return nil, err
	}
	pending, err := s.repo.Substitution.CountByStatus(ctx, model.SubstitutionPending)
	if err != nil {
		s.logger.Error("falha ao contar substituições", zap.Error(err))
		return nil, err
	}
	shifts, err := s.repo.Shift.List(ctx)
	if err != nil {
		s.logger.Error("falha ao listar plantões", zap.Error(err))
		return nil, err
	}

	upcoming := UpcomingShifts(shifts, s.now().In(s.opts.Location), s.opts.UpcomingDays, s.opts.UpcomingLimit)
	list := make([]dto.ShiftResponse, 0, len(upcoming))
	for i := range upcoming {
		list = append(list, toShiftResponse(&upcoming[i]))
	}

	return &dto.DashboardStatsResponse{
		TotalProfissionais:     professionals,
		TotalPlantoes:          shiftCount,
		EscalasAtivas:          activeAssignments,
		SubstituicoesPendentes: pending,
		ProximosPlantoes:       list,
	}, nil
}

// UpcomingShifts plantões com data em [hoje, hoje+days], em ordem crescente de
// data (empate por hora de início), no máximo limit. Datas inválidas são ignoradas.
// O dia de hoje é a data de calendário de today no seu próprio fuso.
func UpcomingShifts(shifts []model.Shift, today time.Time, days, limit int) []model.Shift {
	first := today.Format(dateLayout)
	last := today.AddDate(0, 0, days).Format(dateLayout)

	out := make([]model.Shift, 0)
	for _, sh := range shifts {
		d, err := time.Parse(dateLayout, sh.Date)
		if err != nil {
			continue
		}
		date := d.Format(dateLayout)
		if date < first || date > last {
			continue
		}
		out = append(out, sh)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].StartTime < out[j].StartTime
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// invalidateDashboard descarta o resumo em cache após uma mutação
func invalidateDashboard(ctx context.Context, cache Cache, logger *zap.Logger) {
	if cache == nil {
		return
	}
	if err := cache.Delete(ctx, DashboardCacheKey); err != nil {
		logger.Warn("falha ao invalidar cache do painel", zap.Error(err))
	}
}
