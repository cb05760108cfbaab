package handler

import "github.com/luisapuppin/escala360/internal/service"

// Handler agrega os handlers HTTP por módulo
type Handler struct {
	Professional *ProfessionalHandler
	Reference    *ReferenceHandler
	Shift        *ShiftHandler
	Assignment   *AssignmentHandler
	Substitution *SubstitutionHandler
	Dashboard    *DashboardHandler
	Audit        *AuditHandler
	Export       *ExportHandler
}

// NewHandler cria o agregado de handlers
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Professional: NewProfessionalHandler(svc.Professional, svc.Export),
		Reference:    NewReferenceHandler(svc.Reference),
		Shift:        NewShiftHandler(svc.Shift),
		Assignment:   NewAssignmentHandler(svc.Assignment),
		Substitution: NewSubstitutionHandler(svc.Substitution),
		Dashboard:    NewDashboardHandler(svc.Dashboard),
		Audit:        NewAuditHandler(svc.Audit),
		Export:       NewExportHandler(svc.Export),
	}
}
