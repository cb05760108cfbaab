package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/model"
	"github.com/luisapuppin/escala360/internal/repository"
)

// ── Erros do módulo de escalas ──

var (
	ErrAssignmentNotFound      = errors.New("escala não encontrada")
	ErrInvalidAssignmentStatus = errors.New("status de escala inválido (use ativo, inativo ou substituido)")
)

// AssignmentService escalas e visão processada
type AssignmentService interface {
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	List(ctx context.Context) ([]dto.AssignmentResponse, error)
	// ListProcessed escalas com o profissional efetivo de cada uma
	ListProcessed(ctx context.Context) ([]dto.ProcessedAssignmentResponse, error)
	// ListProcessedByDate visão processada agrupada pela data do plantão
	ListProcessedByDate(ctx context.Context) (map[string][]dto.ProcessedAssignmentResponse, error)
}

type assignmentService struct {
	repo   *repository.Repository
	audit  AuditService
	cache  Cache
	logger *zap.Logger
	now    func() time.Time
}

// NewAssignmentService cria o AssignmentService
func NewAssignmentService(repo *repository.Repository, audit AuditService, cache Cache, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, audit: audit, cache: cache, logger: logger, now: time.Now}
}

// ════════════════════════════════════════════════════════════
// Create: aloca o profissional no plantão
// ════════════════════════════════════════════════════════════

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	status := req.Status
	if status == "" {
		status = model.AssignmentActive
	}
	if !model.ValidAssignmentStatus(status) {
		return nil, ErrInvalidAssignmentStatus
	}

	shift, err := s.repo.Shift.GetByID(ctx, req.IDPlantao)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("falha ao buscar plantão", zap.Error(err))
		return nil, err
	}
	professional, err := s.repo.Professional.GetByID(ctx, req.IDProfissional)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("falha ao buscar profissional", zap.Error(err))
		return nil, err
	}

	// só escalas ativas disputam horário
	if status == model.AssignmentActive {
		sameDay, err := s.repo.Assignment.ListByDateRange(ctx, shift.Date, shift.Date)
		if err != nil {
			s.logger.Error("falha ao listar escalas do dia", zap.Error(err))
			return nil, err
		}
		if c := FindConflict(professional.ID, shift.Date, shift.StartTime, shift.EndTime, sameDay, nil); c != nil {
			s.logger.Info("conflito de horário ao criar escala",
				zap.Int("profissional_id", professional.ID),
				zap.Int("escala_conflitante", c.ID),
			)
			return nil, &ConflictError{ProfessionalName: professional.Name}
		}
	}

	a := &model.Assignment{
		ShiftID:        shift.ID,
		ProfessionalID: professional.ID,
		Status:         status,
		AllocatedAt:    s.now(),
	}
	a.Version = 1
	if err := s.repo.Assignment.Create(ctx, a); err != nil {
		s.logger.Error("falha ao criar escala", zap.Error(err))
		return nil, err
	}
	a.Shift = shift
	a.Professional = professional

	s.audit.Record(ctx, model.EntityAssignment, a.ID, "criado", model.ActorSystem)
	invalidateDashboard(ctx, s.cache, s.logger)

	resp := toAssignmentResponse(a, nil)
	return &resp, nil
}

// ────────────────────── List ──────────────────────

func (s *assignmentService) List(ctx context.Context) ([]dto.AssignmentResponse, error) {
	list, err := s.repo.Assignment.List(ctx)
	if err != nil {
		s.logger.Error("falha ao listar escalas", zap.Error(err))
		return nil, err
	}
	out := make([]dto.AssignmentResponse, 0, len(list))
	for i := range list {
		out = append(out, toAssignmentResponse(&list[i], nil))
	}
	return out, nil
}

// ────────────────────── Visão processada ──────────────────────

func (s *assignmentService) ListProcessed(ctx context.Context) ([]dto.ProcessedAssignmentResponse, error) {
	rows, names, err := loadProcessedView(ctx, s.repo, s.logger)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProcessedAssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toProcessedResponse(&rows[i], names))
	}
	return out, nil
}

func (s *assignmentService) ListProcessedByDate(ctx context.Context) (map[string][]dto.ProcessedAssignmentResponse, error) {
	rows, names, err := loadProcessedView(ctx, s.repo, s.logger)
	if err != nil {
		return nil, err
	}
	groups := GroupByDate(rows)
	out := make(map[string][]dto.ProcessedAssignmentResponse, len(groups))
	for date, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return shiftStart(group[i].Assignment) < shiftStart(group[j].Assignment)
		})
		list := make([]dto.ProcessedAssignmentResponse, 0, len(group))
		for i := range group {
			list = append(list, toProcessedResponse(&group[i], names))
		}
		out[date] = list
	}
	return out, nil
}

// loadProcessedView carrega escalas, substituições e nomes e monta a visão processada
func loadProcessedView(ctx context.Context, repo *repository.Repository, logger *zap.Logger) ([]ProcessedAssignment, map[int]string, error) {
	assignments, err := repo.Assignment.List(ctx)
	if err != nil {
		logger.Error("falha ao listar escalas", zap.Error(err))
		return nil, nil, err
	}
	substitutions, err := repo.Substitution.List(ctx, "")
	if err != nil {
		logger.Error("falha ao listar substituições", zap.Error(err))
		return nil, nil, err
	}
	professionals, err := repo.Professional.List(ctx, false)
	if err != nil {
		logger.Error("falha ao listar profissionais", zap.Error(err))
		return nil, nil, err
	}
	return BuildProcessedAssignments(assignments, substitutions), professionalNames(professionals), nil
}

func shiftStart(a model.Assignment) string {
	if a.Shift == nil {
		return ""
	}
	return a.Shift.StartTime
}
