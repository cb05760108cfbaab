package dto

// ── Paginação ──

// PaginationRequest parâmetros comuns de paginação
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage página (com padrão)
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize tamanho da página (com padrão)
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 20
	}
	return p.PageSize
}

// GetOffset deslocamento
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// ── Auditoria ──

// AuditListRequest filtros da listagem de auditoria
type AuditListRequest struct {
	PaginationRequest
	Entidade   string `form:"entidade"    binding:"omitempty,max=50"`
	IDEntidade int    `form:"id_entidade" binding:"omitempty,min=1"`
}

// AuditEntryResponse registro de auditoria. Também é o corpo dos eventos
// publicados na fila de auditoria.
type AuditEntryResponse struct {
	ID         int    `json:"id"`
	Entidade   string `json:"entidade"`
	IDEntidade int    `json:"id_entidade"`
	Acao       string `json:"acao"`
	Usuario    string `json:"usuario"`
	DataHora   string `json:"data_hora"`
}

// ── Dashboard ──

// DashboardStatsResponse resumo do painel
type DashboardStatsResponse struct {
	TotalProfissionais     int64           `json:"total_profissionais"`
	TotalPlantoes          int64           `json:"total_plantoes"`
	EscalasAtivas          int64           `json:"escalas_ativas"`
	SubstituicoesPendentes int64           `json:"substituicoes_pendentes"`
	ProximosPlantoes       []ShiftResponse `json:"proximos_plantoes"`
}
