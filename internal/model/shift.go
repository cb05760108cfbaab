package model

// Shift plantão - tabela plantoes.
// Date no formato YYYY-MM-DD; StartTime/EndTime "HH:MM" no mesmo dia.
type Shift struct {
	ID         int    `gorm:"primaryKey;autoIncrement"                    json:"id"`
	Date       string `gorm:"column:data;type:varchar(10);not null;index" json:"data"`
	StartTime  string `gorm:"column:hora_inicio;type:varchar(5);not null" json:"hora_inicio"`
	EndTime    string `gorm:"column:hora_fim;type:varchar(5);not null"    json:"hora_fim"`
	RoleID     int    `gorm:"column:funcao_id;not null"                   json:"funcao_id"`
	LocationID int    `gorm:"column:local_id;not null"                    json:"local_id"`
	BaseModel

	// associações
	Role     *Role     `gorm:"foreignKey:RoleID"     json:"funcao,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID" json:"local,omitempty"`
}

// TableName nome da tabela
func (Shift) TableName() string { return "plantoes" }
