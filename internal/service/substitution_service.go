package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/model"
	"github.com/luisapuppin/escala360/internal/repository"
	pkgerrors "github.com/luisapuppin/escala360/pkg/errors"
)

// ── Erros do módulo de substituições ──

var (
	ErrSubstitutionNotFound      = errors.New("substituição não encontrada")
	ErrSelfSubstitution          = errors.New("o substituto deve ser diferente do profissional da escala")
	ErrSubstitutionNotPending    = errors.New("a substituição não está pendente")
	ErrInvalidSubstitutionStatus = errors.New("status de substituição inválido (use pendente, aprovado ou rejeitado)")
	ErrAssignmentNotActive       = errors.New("a escala original não está ativa")
)

// SubstitutionService máquina de estados das substituições:
// pendente → aprovado | rejeitado (terminais)
type SubstitutionService interface {
	Request(ctx context.Context, req *dto.CreateSubstitutionRequest) (*dto.SubstitutionResponse, error)
	Approve(ctx context.Context, id int) (*dto.SubstitutionDecision, error)
	Reject(ctx context.Context, id int) (*dto.SubstitutionDecision, error)
	// UpdateStatus encaminha a mudança de status pela máquina de estados
	UpdateStatus(ctx context.Context, id int, status string) (*dto.SubstitutionDecision, error)
	GetByID(ctx context.Context, id int) (*dto.SubstitutionResponse, error)
	List(ctx context.Context, req *dto.SubstitutionListRequest) ([]dto.SubstitutionResponse, error)
}

type substitutionService struct {
	repo   *repository.Repository
	audit  AuditService
	cache  Cache
	logger *zap.Logger
	now    func() time.Time
}

// NewSubstitutionService cria o SubstitutionService
func NewSubstitutionService(repo *repository.Repository, audit AuditService, cache Cache, logger *zap.Logger) SubstitutionService {
	return &substitutionService{repo: repo, audit: audit, cache: cache, logger: logger, now: time.Now}
}

// ════════════════════════════════════════════════════════════
// Request: abre um pedido pendente
// ════════════════════════════════════════════════════════════

func (s *substitutionService) Request(ctx context.Context, req *dto.CreateSubstitutionRequest) (*dto.SubstitutionResponse, error) {
	assignment, err := s.getAssignment(ctx, req.IDEscalaOriginal)
	if err != nil {
		return nil, err
	}
	// mesma regra do Approve: só escala ativa pode ser repassada
	if assignment.Status != model.AssignmentActive {
		return nil, ErrAssignmentNotActive
	}
	substitute, err := s.getProfessional(ctx, req.IDProfissionalSubstituto)
	if err != nil {
		return nil, err
	}
	if substitute.ID == assignment.ProfessionalID {
		return nil, ErrSelfSubstitution
	}

	shift, err := s.shiftOf(ctx, assignment)
	if err != nil {
		return nil, err
	}
	if err := s.checkConflict(ctx, substitute, shift, nil); err != nil {
		return nil, err
	}

	sub := &model.Substitution{
		OriginalAssignmentID: assignment.ID,
		RequesterID:          assignment.ProfessionalID,
		SubstituteID:         substitute.ID,
		RequestedAt:          s.now(),
		Status:               model.SubstitutionPending,
	}
	sub.Version = 1
	if err := s.repo.Substitution.Create(ctx, sub); err != nil {
		s.logger.Error("falha ao criar substituição", zap.Error(err))
		return nil, err
	}
	sub.Requester = assignment.Professional
	sub.Substitute = substitute

	s.audit.Record(ctx, model.EntitySubstitution, sub.ID, "solicitado", model.ActorSystem)
	invalidateDashboard(ctx, s.cache, s.logger)

	resp := toSubstitutionResponse(sub, nil)
	return &resp, nil
}

// ════════════════════════════════════════════════════════════
// Approve
// ════════════════════════════════════════════════════════════

func (s *substitutionService) Approve(ctx context.Context, id int) (*dto.SubstitutionDecision, error) {
	sub, err := s.getPending(ctx, id)
	if err != nil {
		return nil, err
	}

	assignment, err := s.getAssignment(ctx, sub.OriginalAssignmentID)
	if err != nil {
		return nil, err
	}
	if assignment.Status != model.AssignmentActive {
		return nil, ErrAssignmentNotActive
	}
	shift, err := s.shiftOf(ctx, assignment)
	if err != nil {
		return nil, err
	}
	substitute, err := s.getProfessional(ctx, sub.SubstituteID)
	if err != nil {
		return nil, err
	}
	requester, err := s.getProfessional(ctx, sub.RequesterID)
	if err != nil {
		return nil, err
	}

	// a própria escala original não conta como conflito
	exclude := assignment.ID
	if err := s.checkConflict(ctx, substitute, shift, &exclude); err != nil {
		return nil, err
	}

	warning, err := s.workloadWarning(ctx, substitute, shift)
	if err != nil {
		return nil, err
	}

	// substituição primeiro, depois a escala; tudo ou nada
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Substitution.UpdateStatus(ctx, sub, model.SubstitutionApproved); err != nil {
			return err
		}
		return tx.Assignment.UpdateStatus(ctx, assignment, model.AssignmentSubstituted)
	})
	if err != nil {
		if !errors.Is(err, pkgerrors.ErrOptimisticLock) {
			s.logger.Error("falha ao aprovar substituição", zap.Int("id", id), zap.Error(err))
		}
		return nil, err
	}

	s.audit.Record(ctx, model.EntitySubstitution, sub.ID, "aprovado", model.ActorSupervisor)
	invalidateDashboard(ctx, s.cache, s.logger)

	sub.Requester = requester
	sub.Substitute = substitute
	return &dto.SubstitutionDecision{
		Substituicao: toSubstitutionResponse(sub, nil),
		Mensagem:     fmt.Sprintf("Substituição aprovada com sucesso! %s → %s", requester.Name, substitute.Name),
		Aviso:        warning,
	}, nil
}

// ════════════════════════════════════════════════════════════
// Reject
// ════════════════════════════════════════════════════════════

func (s *substitutionService) Reject(ctx context.Context, id int) (*dto.SubstitutionDecision, error) {
	sub, err := s.getPending(ctx, id)
	if err != nil {
		return nil, err
	}
	requester, err := s.getProfessional(ctx, sub.RequesterID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Substitution.UpdateStatus(ctx, sub, model.SubstitutionRejected); err != nil {
		if !errors.Is(err, pkgerrors.ErrOptimisticLock) {
			s.logger.Error("falha ao rejeitar substituição", zap.Int("id", id), zap.Error(err))
		}
		return nil, err
	}

	s.audit.Record(ctx, model.EntitySubstitution, sub.ID, "rejeitado", model.ActorSupervisor)
	invalidateDashboard(ctx, s.cache, s.logger)

	sub.Requester = requester
	return &dto.SubstitutionDecision{
		Substituicao: toSubstitutionResponse(sub, nil),
		Mensagem:     fmt.Sprintf("Substituição rejeitada. %s permanece no plantão.", requester.Name),
	}, nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *substitutionService) UpdateStatus(ctx context.Context, id int, status string) (*dto.SubstitutionDecision, error) {
	switch status {
	case model.SubstitutionApproved:
		return s.Approve(ctx, id)
	case model.SubstitutionRejected:
		return s.Reject(ctx, id)
	case model.SubstitutionPending:
		sub, err := s.getPending(ctx, id)
		if err != nil {
			return nil, err
		}
		return &dto.SubstitutionDecision{
			Substituicao: toSubstitutionResponse(sub, nil),
			Mensagem:     "Substituição permanece pendente.",
		}, nil
	default:
		return nil, ErrInvalidSubstitutionStatus
	}
}

// ────────────────────── GetByID / List ──────────────────────

func (s *substitutionService) GetByID(ctx context.Context, id int) (*dto.SubstitutionResponse, error) {
	sub, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toSubstitutionResponse(sub, nil)
	return &resp, nil
}

func (s *substitutionService) List(ctx context.Context, req *dto.SubstitutionListRequest) ([]dto.SubstitutionResponse, error) {
	if req.Status != "" && !model.ValidSubstitutionStatus(req.Status) {
		return nil, ErrInvalidSubstitutionStatus
	}
	list, err := s.repo.Substitution.List(ctx, req.Status)
	if err != nil {
		s.logger.Error("falha ao listar substituições", zap.Error(err))
		return nil, err
	}
	out := make([]dto.SubstitutionResponse, 0, len(list))
	for i := range list {
		out = append(out, toSubstitutionResponse(&list[i], nil))
	}
	return out, nil
}

// ════════════════════════════════════════════════════════════
// Auxiliares
// ════════════════════════════════════════════════════════════

func (s *substitutionService) get(ctx context.Context, id int) (*model.Substitution, error) {
	sub, err := s.repo.Substitution.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubstitutionNotFound
		}
		s.logger.Error("falha ao buscar substituição", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return sub, nil
}

func (s *substitutionService) getPending(ctx context.Context, id int) (*model.Substitution, error) {
	sub, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.Status != model.SubstitutionPending {
		return nil, ErrSubstitutionNotPending
	}
	return sub, nil
}

func (s *substitutionService) getAssignment(ctx context.Context, id int) (*model.Assignment, error) {
	a, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("falha ao buscar escala", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (s *substitutionService) getProfessional(ctx context.Context, id int) (*model.Professional, error) {
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

func (s *substitutionService) shiftOf(ctx context.Context, a *model.Assignment) (*model.Shift, error) {
	if a.Shift != nil {
		return a.Shift, nil
	}
	shift, err := s.repo.Shift.GetByID(ctx, a.ShiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("falha ao buscar plantão", zap.Int("id", a.ShiftID), zap.Error(err))
		return nil, err
	}
	a.Shift = shift
	return shift, nil
}

// checkConflict escalas ativas do substituto na data do plantão
func (s *substitutionService) checkConflict(ctx context.Context, substitute *model.Professional, shift *model.Shift, exclude *int) error {
	sameDay, err := s.repo.Assignment.ListByDateRange(ctx, shift.Date, shift.Date)
	if err != nil {
		s.logger.Error("falha ao listar escalas do dia", zap.Error(err))
		return err
	}
	if c := FindConflict(substitute.ID, shift.Date, shift.StartTime, shift.EndTime, sameDay, exclude); c != nil {
		s.logger.Info("conflito de horário do substituto",
			zap.Int("profissional_id", substitute.ID),
			zap.Int("escala_conflitante", c.ID),
		)
		return &ConflictError{ProfessionalName: substitute.Name}
	}
	return nil
}

// workloadWarning aviso quando o plantão leva o substituto ao limite semanal
func (s *substitutionService) workloadWarning(ctx context.Context, substitute *model.Professional, shift *model.Shift) (string, error) {
	from, to, err := WeekBounds(shift.Date)
	if err != nil {
		return "", nil
	}
	week, err := s.repo.Assignment.ListByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("falha ao listar escalas da semana", zap.Error(err))
		return "", err
	}
	approved, err := s.repo.Substitution.List(ctx, model.SubstitutionApproved)
	if err != nil {
		s.logger.Error("falha ao listar substituições aprovadas", zap.Error(err))
		return "", err
	}

	hours, _ := WeeklyHoursWorked(substitute.ID, shift.Date, week, approved)
	if exceedsWeeklyCap(hours, ShiftDurationHours(*shift), substitute.MaxWeeklyHours) {
		return fmt.Sprintf("Atenção: O profissional %s pode exceder a carga horária semanal.", substitute.Name), nil
	}
	return "", nil
}
