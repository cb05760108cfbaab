package model

import "time"

// Status de escala
const (
	AssignmentActive      = "ativo"
	AssignmentInactive    = "inativo"
	AssignmentSubstituted = "substituido"
)

// ValidAssignmentStatus indica se o valor é um status de escala conhecido
func ValidAssignmentStatus(s string) bool {
	switch s {
	case AssignmentActive, AssignmentInactive, AssignmentSubstituted:
		return true
	}
	return false
}

// Assignment escala (alocação de um profissional em um plantão) - tabela escalas
type Assignment struct {
	ID             int       `gorm:"primaryKey;autoIncrement"                              json:"id"`
	ShiftID        int       `gorm:"column:plantao_id;not null;index"                      json:"plantao_id"`
	ProfessionalID int       `gorm:"column:profissional_id;not null;index"                 json:"profissional_id"`
	Status         string    `gorm:"column:status;type:varchar(20);not null;default:'ativo'" json:"status"`
	AllocatedAt    time.Time `gorm:"column:data_alocacao;not null"                         json:"data_alocacao"`
	VersionedModel

	// associações
	Shift        *Shift        `gorm:"foreignKey:ShiftID"        json:"plantao,omitempty"`
	Professional *Professional `gorm:"foreignKey:ProfessionalID" json:"profissional,omitempty"`
}

// TableName nome da tabela
func (Assignment) TableName() string { return "escalas" }
