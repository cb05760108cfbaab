package service

import (
	"time"

	"github.com/luisapuppin/escala360/internal/model"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ShiftDurationHours duração do plantão em horas; 0 se os horários forem inválidos
func ShiftDurationHours(shift model.Shift) float64 {
	start, err := time.Parse(timeLayout, shift.StartTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse(timeLayout, shift.EndTime)
	if err != nil || !end.After(start) {
		return 0
	}
	return end.Sub(start).Hours()
}

// WeekBounds segunda e domingo da semana que contém a data
func WeekBounds(date string) (monday, sunday string, err error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", "", err
	}
	// Weekday: domingo = 0
	offset := (int(d.Weekday()) + 6) % 7
	start := d.AddDate(0, 0, -offset)
	return start.Format(dateLayout), start.AddDate(0, 0, 6).Format(dateLayout), nil
}

// HasApprovedSubstitution indica se a escala tem substituição aprovada
func HasApprovedSubstitution(assignmentID int, substitutions []model.Substitution) bool {
	approved, _ := findSubstitutions(assignmentID, substitutions)
	return approved != nil
}

// HasPendingSubstitution indica se a escala tem substituição pendente
func HasPendingSubstitution(assignmentID int, substitutions []model.Substitution) bool {
	_, pending := findSubstitutions(assignmentID, substitutions)
	return pending != nil
}

// CurrentProfessional profissional efetivo da escala: o substituto aprovado, se houver
func CurrentProfessional(a model.Assignment, substitutions []model.Substitution) int {
	if approved, _ := findSubstitutions(a.ID, substitutions); approved != nil {
		return approved.SubstituteID
	}
	return a.ProfessionalID
}

// WeeklyHoursWorked soma as horas dos plantões que o profissional cobre na semana
// (segunda a domingo, inclusive) que contém a data. Contam as escalas ativas dele
// e as escalas substituídas que ele assumiu por substituição aprovada.
// Escalas sem plantão carregado são ignoradas.
func WeeklyHoursWorked(professionalID int, date string, assignments []model.Assignment, substitutions []model.Substitution) (hours float64, shifts int) {
	from, to, err := WeekBounds(date)
	if err != nil {
		return 0, 0
	}
	for _, a := range assignments {
		if a.Shift == nil || a.Shift.Date < from || a.Shift.Date > to {
			continue
		}
		switch a.Status {
		case model.AssignmentActive:
		case model.AssignmentSubstituted:
			if !HasApprovedSubstitution(a.ID, substitutions) {
				continue
			}
		default:
			continue
		}
		if CurrentProfessional(a, substitutions) != professionalID {
			continue
		}
		hours += ShiftDurationHours(*a.Shift)
		shifts++
	}
	return hours, shifts
}

// exceedsWeeklyCap aviso de carga: já no limite, ou o novo plantão ultrapassa o limite
func exceedsWeeklyCap(current, additional float64, maxHours int) bool {
	limit := float64(maxHours)
	return current >= limit || current+additional > limit
}
