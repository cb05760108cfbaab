package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/model"
)

func setupTestAssignmentService() (AssignmentService, *testRepos) {
	repos := newTestRepos()
	seedBasicData(repos)
	repo := repos.toRepository()
	logger := zap.NewNop()
	audit := NewAuditService(repo, nil, logger)
	return NewAssignmentService(repo, audit, newMockCache(), logger), repos
}

func TestAssignmentService_Create_Success(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	shiftID := addShift(repos, "2025-07-01", "08:00", "14:00")

	resp, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{IDPlantao: shiftID, IDProfissional: 1})
	if err != nil {
		t.Fatalf("Create falhou: %v", err)
	}
	if resp.Status != model.AssignmentActive {
		t.Errorf("status padrão deveria ser ativo, obtido %s", resp.Status)
	}
	if resp.Plantao == nil || resp.Plantao.Data != "2025-07-01" {
		t.Errorf("plantão não anexado: %+v", resp.Plantao)
	}
	if resp.Profissional == nil || resp.Profissional.Nome != "Ana Souza" {
		t.Errorf("profissional não anexado: %+v", resp.Profissional)
	}
	if resp.DataAlocacao == "" {
		t.Error("data_alocacao deveria ser preenchida")
	}

	entry := repos.audit.entries[0]
	if entry.EntityType != model.EntityAssignment || entry.Action != "criado" || entry.EntityID != resp.ID {
		t.Errorf("auditoria inesperada: %+v", entry)
	}
}

func TestAssignmentService_Create_Conflict(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	morning := addShift(repos, "2025-07-01", "08:00", "14:00")
	overlap := addShift(repos, "2025-07-01", "10:00", "16:00")
	addAssignment(repos, morning, 2, model.AssignmentActive)

	_, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{IDPlantao: overlap, IDProfissional: 2})
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("esperado ConflictError, obtido %v", err)
	}
	if conflict.ProfessionalName != "Carlos Lima" {
		t.Errorf("nome no conflito = %s", conflict.ProfessionalName)
	}
	if len(repos.assignment.assignments) != 1 {
		t.Error("escala conflitante não deveria ser gravada")
	}
	if len(repos.audit.entries) != 0 {
		t.Error("falha não deveria ser auditada")
	}
}

func TestAssignmentService_Create_AdjacentShiftsAllowed(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	morning := addShift(repos, "2025-07-01", "08:00", "14:00")
	afternoon := addShift(repos, "2025-07-01", "14:00", "20:00")
	addAssignment(repos, morning, 1, model.AssignmentActive)

	if _, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{IDPlantao: afternoon, IDProfissional: 1}); err != nil {
		t.Errorf("plantões encostados não conflitam: %v", err)
	}
}

func TestAssignmentService_Create_InactiveSkipsConflictCheck(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	shiftID := addShift(repos, "2025-07-01", "08:00", "14:00")
	addAssignment(repos, shiftID, 1, model.AssignmentActive)

	resp, err := svc.Create(context.Background(), &dto.CreateAssignmentRequest{
		IDPlantao:      shiftID,
		IDProfissional: 1,
		Status:         model.AssignmentInactive,
	})
	if err != nil {
		t.Fatalf("escala inativa não disputa horário: %v", err)
	}
	if resp.Status != model.AssignmentInactive {
		t.Errorf("status = %s", resp.Status)
	}
}

func TestAssignmentService_Create_Validation(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	shiftID := addShift(repos, "2025-07-01", "08:00", "14:00")
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.CreateAssignmentRequest
		want error
	}{
		{"status inválido", dto.CreateAssignmentRequest{IDPlantao: shiftID, IDProfissional: 1, Status: "cancelado"}, ErrInvalidAssignmentStatus},
		{"plantão inexistente", dto.CreateAssignmentRequest{IDPlantao: 99, IDProfissional: 1}, ErrShiftNotFound},
		{"profissional inexistente", dto.CreateAssignmentRequest{IDPlantao: shiftID, IDProfissional: 99}, ErrProfessionalNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			if _, err := svc.Create(ctx, &req); !errors.Is(err, tt.want) {
				t.Errorf("esperado %v, obtido %v", tt.want, err)
			}
		})
	}
}

func TestAssignmentService_List_IncludesRoleAndLocation(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	shiftID := addShift(repos, "2025-07-01", "08:00", "14:00")
	addAssignment(repos, shiftID, 1, model.AssignmentActive)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List falhou: %v", err)
	}
	if len(list) != 1 || list[0].Plantao == nil {
		t.Fatalf("escala sem plantão: %+v", list)
	}
	if list[0].Plantao.Funcao != "Enfermeiro" || list[0].Plantao.Local != "Pronto Socorro" {
		t.Errorf("função/local = %q / %q", list[0].Plantao.Funcao, list[0].Plantao.Local)
	}

	rows, err := svc.ListProcessed(context.Background())
	if err != nil {
		t.Fatalf("ListProcessed falhou: %v", err)
	}
	if rows[0].Plantao == nil || rows[0].Plantao.Funcao != "Enfermeiro" {
		t.Errorf("visão processada sem função: %+v", rows[0].Plantao)
	}
}

func TestAssignmentService_ListProcessed(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	morning := addShift(repos, "2025-07-01", "08:00", "14:00")
	afternoon := addShift(repos, "2025-07-01", "14:00", "20:00")
	a1 := addAssignment(repos, morning, 1, model.AssignmentSubstituted)
	a2 := addAssignment(repos, afternoon, 2, model.AssignmentActive)
	addSubstitution(repos, a1, 1, 3, model.SubstitutionApproved)
	addSubstitution(repos, a2, 2, 3, model.SubstitutionPending)

	rows, err := svc.ListProcessed(context.Background())
	if err != nil {
		t.Fatalf("ListProcessed falhou: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("esperadas 2 linhas, obtidas %d", len(rows))
	}
	if !rows[0].SubstituicaoAprovada || rows[0].ProfissionalAtual.Nome != "Beatriz Santos" {
		t.Errorf("linha 1: %+v", rows[0])
	}
	if rows[0].SubstituicaoInfo == nil || rows[0].SubstituicaoInfo.Substituto.Nome != "Beatriz Santos" {
		t.Errorf("linha 1: info da substituição: %+v", rows[0].SubstituicaoInfo)
	}
	if !rows[1].SubstituicaoPendente || rows[1].ProfissionalAtual.Nome != "Carlos Lima" {
		t.Errorf("linha 2: %+v", rows[1])
	}
}

func TestAssignmentService_ListProcessedByDate(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	late := addShift(repos, "2025-07-01", "14:00", "20:00")
	early := addShift(repos, "2025-07-01", "08:00", "14:00")
	other := addShift(repos, "2025-07-02", "08:00", "14:00")
	addAssignment(repos, late, 1, model.AssignmentActive)
	addAssignment(repos, early, 2, model.AssignmentActive)
	addAssignment(repos, other, 3, model.AssignmentActive)

	groups, err := svc.ListProcessedByDate(context.Background())
	if err != nil {
		t.Fatalf("ListProcessedByDate falhou: %v", err)
	}
	day := groups["2025-07-01"]
	if len(groups) != 2 || len(day) != 2 {
		t.Fatalf("agrupamento inesperado: %+v", groups)
	}
	if day[0].Plantao.HoraInicio != "08:00" {
		t.Errorf("grupo deveria estar ordenado por hora de início: %+v", day)
	}
}
