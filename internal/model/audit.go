package model

import "time"

// Rótulos de entidade e de ator usados na auditoria
const (
	EntityProfessional = "profissional"
	EntityShift        = "plantao"
	EntityAssignment   = "escala"
	EntitySubstitution = "substituicao"
	EntityLocation     = "local"

	ActorSystem     = "sistema"
	ActorSupervisor = "supervisor"
)

// AuditEntry registro de auditoria - tabela auditoria (somente inserção)
type AuditEntry struct {
	ID         int       `gorm:"primaryKey;autoIncrement"                      json:"id"`
	EntityType string    `gorm:"column:entidade;type:varchar(50);not null;index" json:"entidade"`
	EntityID   int       `gorm:"column:id_entidade;not null"                   json:"id_entidade"`
	Action     string    `gorm:"column:acao;type:varchar(50);not null"         json:"acao"`
	Actor      string    `gorm:"column:usuario;type:varchar(100);not null"     json:"usuario"`
	Timestamp  time.Time `gorm:"column:data_hora;not null"                     json:"data_hora"`
}

// TableName nome da tabela
func (AuditEntry) TableName() string { return "auditoria" }
