package dto

// ── Plantões ──

// CreateShiftRequest criação de plantão
type CreateShiftRequest struct {
	Data       string `json:"data"        binding:"required,datetime=2006-01-02"`
	HoraInicio string `json:"hora_inicio" binding:"required,datetime=15:04"`
	HoraFim    string `json:"hora_fim"    binding:"required,datetime=15:04"`
	FuncaoID   int    `json:"funcao_id"   binding:"required,min=1"`
	LocalID    int    `json:"local_id"    binding:"required,min=1"`
}

// ShiftResponse plantão
type ShiftResponse struct {
	ID         int    `json:"id"`
	Data       string `json:"data"`
	HoraInicio string `json:"hora_inicio"`
	HoraFim    string `json:"hora_fim"`
	FuncaoID   int    `json:"funcao_id"`
	Funcao     string `json:"funcao,omitempty"`
	LocalID    int    `json:"local_id"`
	Local      string `json:"local,omitempty"`
}

// ── Escalas ──

// CreateAssignmentRequest alocação de profissional em plantão
type CreateAssignmentRequest struct {
	IDPlantao      int    `json:"id_plantao"      binding:"required,min=1"`
	IDProfissional int    `json:"id_profissional" binding:"required,min=1"`
	Status         string `json:"status"          binding:"omitempty,max=20"`
}

// AssignmentListRequest filtros da listagem de escalas
type AssignmentListRequest struct {
	Processadas bool   `form:"processadas"`
	Agrupar     string `form:"agrupar" binding:"omitempty,oneof=data"`
}

// AssignmentResponse escala
type AssignmentResponse struct {
	ID             int                `json:"id"`
	IDPlantao      int                `json:"id_plantao"`
	IDProfissional int                `json:"id_profissional"`
	Status         string             `json:"status"`
	DataAlocacao   string             `json:"data_alocacao"`
	Plantao        *ShiftResponse     `json:"plantao,omitempty"`
	Profissional   *ProfessionalBrief `json:"profissional,omitempty"`
}

// ProcessedAssignmentResponse escala com o estado de substituição consolidado
type ProcessedAssignmentResponse struct {
	AssignmentResponse
	SubstituicaoAprovada bool                  `json:"substituicao_aprovada"`
	SubstituicaoPendente bool                  `json:"substituicao_pendente"`
	ProfissionalAtual    ProfessionalBrief     `json:"profissional_atual"`
	SubstituicaoInfo     *SubstitutionResponse `json:"substituicao_info,omitempty"`
}

// ── Substituições ──

// CreateSubstitutionRequest pedido de substituição
type CreateSubstitutionRequest struct {
	IDEscalaOriginal         int `json:"id_escala_original"         binding:"required,min=1"`
	IDProfissionalSubstituto int `json:"id_profissional_substituto" binding:"required,min=1"`
}

// UpdateSubstitutionStatusRequest mudança de status pela máquina de estados
type UpdateSubstitutionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SubstitutionListRequest filtros da listagem de substituições
type SubstitutionListRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=pendente aprovado rejeitado"`
}

// SubstitutionResponse substituição
type SubstitutionResponse struct {
	ID                        int                `json:"id"`
	IDEscalaOriginal          int                `json:"id_escala_original"`
	IDProfissionalSolicitante int                `json:"id_profissional_solicitante"`
	IDProfissionalSubstituto  int                `json:"id_profissional_substituto"`
	DataSolicitacao           string             `json:"data_solicitacao"`
	Status                    string             `json:"status"`
	Solicitante               *ProfessionalBrief `json:"profissional_solicitante,omitempty"`
	Substituto                *ProfessionalBrief `json:"profissional_substituto,omitempty"`
}

// SubstitutionDecision resultado de aprovação/rejeição
type SubstitutionDecision struct {
	Substituicao SubstitutionResponse
	Mensagem     string
	// Aviso não bloqueante (carga horária semanal)
	Aviso string
}
