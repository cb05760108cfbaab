package service

import (
	"errors"
	"fmt"

	"github.com/luisapuppin/escala360/internal/model"
)

// ErrScheduleConflict conflito de horário entre escalas ativas de um profissional
var ErrScheduleConflict = errors.New("o profissional já tem um plantão no mesmo horário")

// ConflictError conflito de horário com o nome do profissional envolvido.
// errors.Is(err, ErrScheduleConflict) é verdadeiro.
type ConflictError struct {
	ProfessionalName string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("O profissional %s já tem um plantão no mesmo horário!", e.ProfessionalName)
}

// Is permite errors.Is(err, ErrScheduleConflict)
func (e *ConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}

// HasConflict indica se o profissional já tem outra escala ativa na mesma data
// com intervalo [start, end) sobreposto. As escalas precisam do plantão carregado;
// as que não o têm são ignoradas.
func HasConflict(professionalID int, date, start, end string, assignments []model.Assignment, excludeAssignmentID *int) bool {
	return FindConflict(professionalID, date, start, end, assignments, excludeAssignmentID) != nil
}

// FindConflict retorna a primeira escala que conflita, ou nil
func FindConflict(professionalID int, date, start, end string, assignments []model.Assignment, excludeAssignmentID *int) *model.Assignment {
	for i := range assignments {
		a := &assignments[i]
		if excludeAssignmentID != nil && a.ID == *excludeAssignmentID {
			continue
		}
		if a.ProfessionalID != professionalID || a.Status != model.AssignmentActive || a.Shift == nil {
			continue
		}
		if a.Shift.Date != date {
			continue
		}
		// "HH:MM" com zero à esquerda ordena lexicograficamente
		if start < a.Shift.EndTime && end > a.Shift.StartTime {
			return a
		}
	}
	return nil
}
