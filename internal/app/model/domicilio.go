package model

import "time"

type TipoDireccion string

const (
	TipoFacturacion TipoDireccion = "FACTURACION"
	TipoEnvio       TipoDireccion = "ENVIO"
)

func (t TipoDireccion) IsValid() bool {
	return t == TipoFacturacion || t == TipoEnvio
}

type Domicilio struct {
	ID            uint          `gorm:"primarykey" json:"id"`
	Domicilio     string        `gorm:"size:500;not null" json:"domicilio"`
	Colonia       string        `gorm:"size:255;not null" json:"colonia"`
	Municipio     string        `gorm:"size:255;not null" json:"municipio"`
	Estado        string        `gorm:"size:255;not null" json:"estado"`
	TipoDireccion TipoDireccion `gorm:"type:varchar(20);not null" json:"tipo_direccion"`
	ClienteID     uint          `gorm:"not null;index" json:"cliente_id"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Domicilio) TableName() string {
	return "domicilios"
}
