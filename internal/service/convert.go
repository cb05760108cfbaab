package service

import (
	"time"

	"github.com/luisapuppin/escala360/internal/dto"
	"github.com/luisapuppin/escala360/internal/model"
)

// Conversões model → dto compartilhadas entre os serviços

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func toProfessionalResponse(p *model.Professional) dto.ProfessionalResponse {
	return dto.ProfessionalResponse{
		ID:                        p.ID,
		Nome:                      p.Name,
		Cargo:                     p.JobTitle,
		Email:                     p.Email,
		Telefone:                  p.Phone,
		Ativo:                     p.Active,
		CargaHorariaMaximaSemanal: p.MaxWeeklyHours,
	}
}

func toRoleResponse(r *model.Role) dto.RoleResponse {
	return dto.RoleResponse{ID: r.ID, Nome: r.Name, Descricao: r.Description}
}

func toLocationResponse(l *model.Location) dto.LocationResponse {
	return dto.LocationResponse{ID: l.ID, Nome: l.Name, Endereco: l.Address, Ativo: l.Active}
}

func toShiftResponse(s *model.Shift) dto.ShiftResponse {
	resp := dto.ShiftResponse{
		ID:         s.ID,
		Data:       s.Date,
		HoraInicio: s.StartTime,
		HoraFim:    s.EndTime,
		FuncaoID:   s.RoleID,
		LocalID:    s.LocationID,
	}
	if s.Role != nil {
		resp.Funcao = s.Role.Name
	}
	if s.Location != nil {
		resp.Local = s.Location.Name
	}
	return resp
}

// brief resolve o nome pelo índice; sem entrada, só o id
func brief(id int, names map[int]string) dto.ProfessionalBrief {
	return dto.ProfessionalBrief{ID: id, Nome: names[id]}
}

func toAssignmentResponse(a *model.Assignment, names map[int]string) dto.AssignmentResponse {
	resp := dto.AssignmentResponse{
		ID:             a.ID,
		IDPlantao:      a.ShiftID,
		IDProfissional: a.ProfessionalID,
		Status:         a.Status,
		DataAlocacao:   formatTimestamp(a.AllocatedAt),
	}
	if a.Shift != nil {
		shift := toShiftResponse(a.Shift)
		resp.Plantao = &shift
	}
	if a.Professional != nil {
		resp.Profissional = &dto.ProfessionalBrief{ID: a.Professional.ID, Nome: a.Professional.Name}
	} else if _, ok := names[a.ProfessionalID]; ok {
		b := brief(a.ProfessionalID, names)
		resp.Profissional = &b
	}
	return resp
}

func toSubstitutionResponse(s *model.Substitution, names map[int]string) dto.SubstitutionResponse {
	resp := dto.SubstitutionResponse{
		ID:                        s.ID,
		IDEscalaOriginal:          s.OriginalAssignmentID,
		IDProfissionalSolicitante: s.RequesterID,
		IDProfissionalSubstituto:  s.SubstituteID,
		DataSolicitacao:           formatTimestamp(s.RequestedAt),
		Status:                    s.Status,
	}
	switch {
	case s.Requester != nil:
		resp.Solicitante = &dto.ProfessionalBrief{ID: s.Requester.ID, Nome: s.Requester.Name}
	case names != nil:
		b := brief(s.RequesterID, names)
		resp.Solicitante = &b
	}
	switch {
	case s.Substitute != nil:
		resp.Substituto = &dto.ProfessionalBrief{ID: s.Substitute.ID, Nome: s.Substitute.Name}
	case names != nil:
		b := brief(s.SubstituteID, names)
		resp.Substituto = &b
	}
	return resp
}

func toProcessedResponse(row *ProcessedAssignment, names map[int]string) dto.ProcessedAssignmentResponse {
	resp := dto.ProcessedAssignmentResponse{
		AssignmentResponse:   toAssignmentResponse(&row.Assignment, names),
		SubstituicaoAprovada: row.SubstitutionApproved,
		SubstituicaoPendente: row.SubstitutionPending,
		ProfissionalAtual:    brief(row.CurrentProfessionalID, names),
	}
	if row.SubstitutionInfo != nil {
		info := toSubstitutionResponse(row.SubstitutionInfo, names)
		resp.SubstituicaoInfo = &info
	}
	return resp
}

func toAuditEntryResponse(e *model.AuditEntry) dto.AuditEntryResponse {
	return dto.AuditEntryResponse{
		ID:         e.ID,
		Entidade:   e.EntityType,
		IDEntidade: e.EntityID,
		Acao:       e.Action,
		Usuario:    e.Actor,
		DataHora:   formatTimestamp(e.Timestamp),
	}
}

func professionalNames(list []model.Professional) map[int]string {
	names := make(map[int]string, len(list))
	for _, p := range list {
		names[p.ID] = p.Name
	}
	return names
}
