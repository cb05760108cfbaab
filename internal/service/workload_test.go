package service

import (
	"testing"

	"github.com/luisapuppin/escala360/internal/model"
)

func TestShiftDurationHours(t *testing.T) {
	tests := []struct {
		start, end string
		want       float64
	}{
		{"08:00", "14:00", 6},
		{"07:30", "19:00", 11.5},
		{"14:00", "08:00", 0},
		{"xx", "08:00", 0},
	}
	for _, tt := range tests {
		got := ShiftDurationHours(model.Shift{StartTime: tt.start, EndTime: tt.end})
		if got != tt.want {
			t.Errorf("ShiftDurationHours(%s-%s) = %v, esperado %v", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		date, monday, sunday string
	}{
		{"2025-07-01", "2025-06-30", "2025-07-06"}, // terça
		{"2025-06-30", "2025-06-30", "2025-07-06"}, // segunda
		{"2025-07-06", "2025-06-30", "2025-07-06"}, // domingo
	}
	for _, tt := range tests {
		from, to, err := WeekBounds(tt.date)
		if err != nil {
			t.Fatalf("WeekBounds(%s): %v", tt.date, err)
		}
		if from != tt.monday || to != tt.sunday {
			t.Errorf("WeekBounds(%s) = %s..%s, esperado %s..%s", tt.date, from, to, tt.monday, tt.sunday)
		}
	}

	if _, _, err := WeekBounds("01/07/2025"); err == nil {
		t.Error("esperado erro para data inválida")
	}
}

func TestWeeklyHoursWorked(t *testing.T) {
	assignments := []model.Assignment{
		assignmentAt(1, 1, "2025-06-30", "08:00", "14:00", model.AssignmentActive),     // conta: 6h
		assignmentAt(2, 1, "2025-07-06", "08:00", "20:00", model.AssignmentActive),     // conta: 12h (domingo)
		assignmentAt(3, 1, "2025-07-07", "08:00", "14:00", model.AssignmentActive),     // outra semana
		assignmentAt(4, 1, "2025-07-01", "08:00", "14:00", model.AssignmentInactive),   // inativa
		assignmentAt(5, 2, "2025-07-02", "08:00", "12:00", model.AssignmentSubstituted), // assumida por 1: 4h
		assignmentAt(6, 1, "2025-07-03", "08:00", "14:00", model.AssignmentSubstituted), // 1 foi substituído
	}
	substitutions := []model.Substitution{
		{ID: 1, OriginalAssignmentID: 5, RequesterID: 2, SubstituteID: 1, Status: model.SubstitutionApproved},
		{ID: 2, OriginalAssignmentID: 6, RequesterID: 1, SubstituteID: 3, Status: model.SubstitutionApproved},
	}

	hours, count := WeeklyHoursWorked(1, "2025-07-01", assignments, substitutions)
	if hours != 22 || count != 3 {
		t.Errorf("WeeklyHoursWorked = %vh em %d plantões, esperado 22h em 3", hours, count)
	}

	hours, _ = WeeklyHoursWorked(3, "2025-07-01", assignments, substitutions)
	if hours != 6 {
		t.Errorf("substituto 3 deveria somar 6h, obtido %v", hours)
	}
}

func TestSubstitutionHelpers(t *testing.T) {
	subs := []model.Substitution{
		{ID: 1, OriginalAssignmentID: 1, SubstituteID: 5, Status: model.SubstitutionPending},
		{ID: 2, OriginalAssignmentID: 2, SubstituteID: 6, Status: model.SubstitutionApproved},
	}
	if !HasPendingSubstitution(1, subs) || HasPendingSubstitution(2, subs) {
		t.Error("HasPendingSubstitution incorreto")
	}
	if HasApprovedSubstitution(1, subs) || !HasApprovedSubstitution(2, subs) {
		t.Error("HasApprovedSubstitution incorreto")
	}
	if got := CurrentProfessional(model.Assignment{ID: 2, ProfessionalID: 9}, subs); got != 6 {
		t.Errorf("CurrentProfessional = %d, esperado 6", got)
	}
	if got := CurrentProfessional(model.Assignment{ID: 1, ProfessionalID: 9}, subs); got != 9 {
		t.Errorf("CurrentProfessional = %d, esperado 9", got)
	}
}

func TestExceedsWeeklyCap(t *testing.T) {
	tests := []struct {
		current, extra float64
		max            int
		want           bool
	}{
		{0, 6, 40, false},
		{34, 6, 40, false},
		{36, 6, 40, true},
		{40, 0, 40, true},
	}
	for _, tt := range tests {
		if got := exceedsWeeklyCap(tt.current, tt.extra, tt.max); got != tt.want {
			t.Errorf("exceedsWeeklyCap(%v, %v, %d) = %v", tt.current, tt.extra, tt.max, got)
		}
	}
}
