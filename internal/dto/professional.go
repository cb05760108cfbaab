package dto

// ── Profissionais ──

// CreateProfessionalRequest cadastro de profissional
type CreateProfessionalRequest struct {
	Nome                      string `json:"nome"                         binding:"required,min=2,max=150"`
	Cargo                     string `json:"cargo"                        binding:"required,max=100"`
	Email                     string `json:"email"                        binding:"required,email,max=255"`
	Telefone                  string `json:"telefone"                     binding:"omitempty,max=30"`
	CargaHorariaMaximaSemanal int    `json:"carga_horaria_maxima_semanal" binding:"required,min=1,max=168"`
}

// UpdateProfessionalRequest atualização parcial; ativo=false desativa
type UpdateProfessionalRequest struct {
	Nome                      *string `json:"nome"                         binding:"omitempty,min=2,max=150"`
	Cargo                     *string `json:"cargo"                        binding:"omitempty,max=100"`
	Email                     *string `json:"email"                        binding:"omitempty,email,max=255"`
	Telefone                  *string `json:"telefone"                     binding:"omitempty,max=30"`
	Ativo                     *bool   `json:"ativo"`
	CargaHorariaMaximaSemanal *int    `json:"carga_horaria_maxima_semanal" binding:"omitempty,min=1,max=168"`
}

// ProfessionalListRequest filtros da listagem
type ProfessionalListRequest struct {
	Ativo bool `form:"ativo"`
}

// WorkloadRequest consulta de carga horária
type WorkloadRequest struct {
	Data string `form:"data" binding:"omitempty,datetime=2006-01-02"`
}

// ProfessionalResponse profissional
type ProfessionalResponse struct {
	ID                        int    `json:"id"`
	Nome                      string `json:"nome"`
	Cargo                     string `json:"cargo"`
	Email                     string `json:"email"`
	Telefone                  string `json:"telefone,omitempty"`
	Ativo                     bool   `json:"ativo"`
	CargaHorariaMaximaSemanal int    `json:"carga_horaria_maxima_semanal"`
}

// ProfessionalBrief referência resumida a um profissional
type ProfessionalBrief struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// WorkloadResponse carga horária semanal de um profissional
type WorkloadResponse struct {
	ProfissionalID   int     `json:"profissional_id"`
	SemanaInicio     string  `json:"semana_inicio"`
	SemanaFim        string  `json:"semana_fim"`
	HorasTrabalhadas float64 `json:"horas_trabalhadas"`
	CargaMaxima      int     `json:"carga_maxima"`
	Percentual       float64 `json:"percentual"`
	PlantoesSemana   int     `json:"plantoes_semana"`
	Diferenca        float64 `json:"diferenca"`
}
