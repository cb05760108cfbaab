package dto

// ── Locais e funções ──

// CreateLocationRequest criação de local
type CreateLocationRequest struct {
	Nome     string `json:"nome"     binding:"required,min=2,max=100"`
	Endereco string `json:"endereco" binding:"omitempty,max=200"`
}

// LocationListRequest filtros da listagem de locais
type LocationListRequest struct {
	IncluirInativos bool `form:"incluir_inativos"`
}

// LocationResponse local
type LocationResponse struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	Endereco string `json:"endereco,omitempty"`
	Ativo    bool   `json:"ativo"`
}

// RoleResponse função
type RoleResponse struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao,omitempty"`
}
