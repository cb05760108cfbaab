package service

import (
	"reflect"
	"testing"

	"github.com/luisapuppin/escala360/internal/model"
)

func TestBuildProcessedAssignments(t *testing.T) {
	assignments := []model.Assignment{
		assignmentAt(1, 1, "2025-07-01", "08:00", "14:00", model.AssignmentSubstituted),
		assignmentAt(2, 2, "2025-07-01", "14:00", "20:00", model.AssignmentActive),
		assignmentAt(3, 3, "2025-07-02", "08:00", "14:00", model.AssignmentActive),
	}
	substitutions := []model.Substitution{
		{ID: 1, OriginalAssignmentID: 1, RequesterID: 1, SubstituteID: 4, Status: model.SubstitutionApproved},
		{ID: 2, OriginalAssignmentID: 2, RequesterID: 2, SubstituteID: 3, Status: model.SubstitutionPending},
		{ID: 3, OriginalAssignmentID: 3, RequesterID: 3, SubstituteID: 1, Status: model.SubstitutionRejected},
	}

	rows := BuildProcessedAssignments(assignments, substitutions)
	if len(rows) != 3 {
		t.Fatalf("esperado 3 linhas, obtido %d", len(rows))
	}

	// aprovada: profissional atual é o substituto
	if !rows[0].SubstitutionApproved || rows[0].CurrentProfessionalID != 4 {
		t.Errorf("linha 1: %+v", rows[0])
	}
	if rows[0].SubstitutionInfo == nil || rows[0].SubstitutionInfo.ID != 1 {
		t.Errorf("linha 1: info esperada da substituição 1")
	}

	// pendente: profissional atual não muda
	if rows[1].SubstitutionApproved || !rows[1].SubstitutionPending || rows[1].CurrentProfessionalID != 2 {
		t.Errorf("linha 2: %+v", rows[1])
	}
	if rows[1].SubstitutionInfo == nil || rows[1].SubstitutionInfo.ID != 2 {
		t.Errorf("linha 2: info esperada da substituição 2")
	}

	// rejeitada não aparece
	if rows[2].SubstitutionApproved || rows[2].SubstitutionPending || rows[2].SubstitutionInfo != nil {
		t.Errorf("linha 3: %+v", rows[2])
	}
	if rows[2].CurrentProfessionalID != 3 {
		t.Errorf("linha 3: profissional atual = %d", rows[2].CurrentProfessionalID)
	}
}

func TestBuildProcessedAssignments_ApprovedWinsOverPending(t *testing.T) {
	assignments := []model.Assignment{assignmentAt(1, 1, "2025-07-01", "08:00", "14:00", model.AssignmentSubstituted)}
	substitutions := []model.Substitution{
		{ID: 1, OriginalAssignmentID: 1, SubstituteID: 2, Status: model.SubstitutionPending},
		{ID: 2, OriginalAssignmentID: 1, SubstituteID: 3, Status: model.SubstitutionApproved},
		{ID: 3, OriginalAssignmentID: 1, SubstituteID: 4, Status: model.SubstitutionApproved},
	}

	rows := BuildProcessedAssignments(assignments, substitutions)
	r := rows[0]
	if !r.SubstitutionApproved || !r.SubstitutionPending {
		t.Fatalf("flags: %+v", r)
	}
	if r.CurrentProfessionalID != 3 {
		t.Errorf("primeira aprovada deveria valer, obtido %d", r.CurrentProfessionalID)
	}
	if r.SubstitutionInfo.ID != 2 {
		t.Errorf("info deveria ser a aprovada, obtido %d", r.SubstitutionInfo.ID)
	}
}

func TestBuildProcessedAssignments_IdempotentAndPure(t *testing.T) {
	assignments := []model.Assignment{
		assignmentAt(1, 1, "2025-07-01", "08:00", "14:00", model.AssignmentActive),
	}
	substitutions := []model.Substitution{
		{ID: 1, OriginalAssignmentID: 1, SubstituteID: 2, Status: model.SubstitutionPending},
	}
	before := []model.Substitution{substitutions[0]}

	first := BuildProcessedAssignments(assignments, substitutions)
	second := BuildProcessedAssignments(assignments, substitutions)
	if !reflect.DeepEqual(first, second) {
		t.Error("duas chamadas sobre as mesmas entradas deveriam dar o mesmo resultado")
	}

	first[0].SubstitutionInfo.Status = model.SubstitutionRejected
	if !reflect.DeepEqual(substitutions, before) {
		t.Error("a saída não pode compartilhar memória com a entrada")
	}
}

func TestGroupByDate(t *testing.T) {
	rows := BuildProcessedAssignments([]model.Assignment{
		assignmentAt(1, 1, "2025-07-01", "08:00", "14:00", model.AssignmentActive),
		assignmentAt(2, 2, "2025-07-02", "08:00", "14:00", model.AssignmentActive),
		assignmentAt(3, 3, "2025-07-01", "14:00", "20:00", model.AssignmentActive),
	}, nil)

	groups := GroupByDate(rows)
	if len(groups) != 2 {
		t.Fatalf("esperado 2 datas, obtido %d", len(groups))
	}
	if len(groups["2025-07-01"]) != 2 || groups["2025-07-01"][1].Assignment.ID != 3 {
		t.Errorf("grupo 2025-07-01: %+v", groups["2025-07-01"])
	}
}
