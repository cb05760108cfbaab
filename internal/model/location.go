package model

// Location local de atendimento - tabela locais
type Location struct {
	ID      int    `gorm:"primaryKey;autoIncrement"    json:"id"`
	Name    string `gorm:"column:nome;type:varchar(100);not null"     json:"nome"`
	Address string `gorm:"column:endereco;type:varchar(200)"          json:"endereco"`
	Active  bool   `gorm:"column:ativo;not null"         json:"ativo"`
	BaseModel
}

// TableName nome da tabela
func (Location) TableName() string { return "locais" }

// Role função exercida no plantão - tabela funcoes (dados de referência)
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement"                json:"id"`
	Name        string `gorm:"column:nome;type:varchar(100);not null" json:"nome"`
	Description string `gorm:"column:descricao;type:varchar(255)"     json:"descricao"`
}

// TableName nome da tabela
func (Role) TableName() string { return "funcoes" }
