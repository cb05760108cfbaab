package model

// Professional profissional de saúde - tabela profissionais.
// Nunca é removido, apenas desativado.
type Professional struct {
	ID             int    `gorm:"primaryKey;autoIncrement"                          json:"id"`
	Name           string `gorm:"column:nome;type:varchar(150);not null"           json:"nome"`
	JobTitle       string `gorm:"column:cargo;type:varchar(100);not null"          json:"cargo"`
	Email          string `gorm:"column:email;type:varchar(255);not null"          json:"email"`
	Phone          string `gorm:"column:telefone;type:varchar(30)"                 json:"telefone"`
	Active         bool   `gorm:"column:ativo;not null"               json:"ativo"`
	MaxWeeklyHours int    `gorm:"column:carga_horaria_maxima_semanal;not null"     json:"carga_horaria_maxima_semanal"`
	BaseModel
}

// TableName nome da tabela
func (Professional) TableName() string { return "profissionais" }
