package model

import "time"

// Status de substituição. aprovado e rejeitado são terminais.
const (
	SubstitutionPending  = "pendente"
	SubstitutionApproved = "aprovado"
	SubstitutionRejected = "rejeitado"
)

// ValidSubstitutionStatus indica se o valor é um status de substituição conhecido
func ValidSubstitutionStatus(s string) bool {
	switch s {
	case SubstitutionPending, SubstitutionApproved, SubstitutionRejected:
		return true
	}
	return false
}

// Substitution pedido de substituição - tabela substituicoes
type Substitution struct {
	ID                     int       `gorm:"primaryKey;autoIncrement"                                 json:"id"`
	OriginalAssignmentID   int       `gorm:"column:escala_original_id;not null;index"                 json:"escala_original_id"`
	RequesterID            int       `gorm:"column:profissional_solicitante_id;not null"              json:"profissional_solicitante_id"`
	SubstituteID           int       `gorm:"column:profissional_substituto_id;not null"               json:"profissional_substituto_id"`
	RequestedAt            time.Time `gorm:"column:data_solicitacao;not null"                         json:"data_solicitacao"`
	Status                 string    `gorm:"column:status;type:varchar(20);not null;default:'pendente'" json:"status"`
	VersionedModel

	// associações
	OriginalAssignment *Assignment   `gorm:"foreignKey:OriginalAssignmentID" json:"escala_original,omitempty"`
	Requester          *Professional `gorm:"foreignKey:RequesterID"          json:"profissional_solicitante,omitempty"`
	Substitute         *Professional `gorm:"foreignKey:SubstituteID"         json:"profissional_substituto,omitempty"`
}

// TableName nome da tabela
func (Substitution) TableName() string { return "substituicoes" }
