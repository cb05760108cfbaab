package model

import "time"

// BaseModel campos de auditoria de linha (embutidos em todos os modelos mutáveis)
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"-"`
}

// VersionedModel modelo com trava otimista
type VersionedModel struct {
	BaseModel
	Version int `gorm:"not null;default:1" json:"-"`
}
