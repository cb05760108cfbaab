package service

import (
	"github.com/luisapuppin/escala360/internal/model"
)

// ProcessedAssignment escala com o estado de substituição consolidado
type ProcessedAssignment struct {
	Assignment            model.Assignment
	SubstitutionApproved  bool
	SubstitutionPending   bool
	CurrentProfessionalID int
	// aprovada se houver, senão a pendente, senão nil
	SubstitutionInfo *model.Substitution
}

// BuildProcessedAssignments projeta cada escala com o profissional efetivo.
// Para cada escala vale a primeira substituição aprovada e a primeira pendente
// encontradas. Não altera as entradas.
func BuildProcessedAssignments(assignments []model.Assignment, substitutions []model.Substitution) []ProcessedAssignment {
	out := make([]ProcessedAssignment, 0, len(assignments))
	for _, a := range assignments {
		approved, pending := findSubstitutions(a.ID, substitutions)

		row := ProcessedAssignment{
			Assignment:            a,
			SubstitutionApproved:  approved != nil,
			SubstitutionPending:   pending != nil,
			CurrentProfessionalID: a.ProfessionalID,
		}
		if approved != nil {
			row.CurrentProfessionalID = approved.SubstituteID
			row.SubstitutionInfo = approved
		} else if pending != nil {
			row.SubstitutionInfo = pending
		}
		out = append(out, row)
	}
	return out
}

// GroupByDate agrupa as linhas pela data do plantão, mantendo a ordem de entrada
func GroupByDate(rows []ProcessedAssignment) map[string][]ProcessedAssignment {
	groups := make(map[string][]ProcessedAssignment)
	for _, r := range rows {
		date := ""
		if r.Assignment.Shift != nil {
			date = r.Assignment.Shift.Date
		}
		groups[date] = append(groups[date], r)
	}
	return groups
}

// findSubstitutions devolve cópias da primeira aprovada e da primeira pendente
func findSubstitutions(assignmentID int, substitutions []model.Substitution) (approved, pending *model.Substitution) {
	for i := range substitutions {
		s := substitutions[i]
		if s.OriginalAssignmentID != assignmentID {
			continue
		}
		switch s.Status {
		case model.SubstitutionApproved:
			if approved == nil {
				approved = &s
			}
		case model.SubstitutionPending:
			if pending == nil {
				pending = &s
			}
		}
		if approved != nil && pending != nil {
			break
		}
	}
	return approved, pending
}
