package model

import "time"

type Producto struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Nombre       string    `gorm:"size:255;not null" json:"nombre"`
	UnidadMedida string    `gorm:"size:50;not null" json:"unidad_medida"`
	PrecioBase   float64   `gorm:"not null" json:"precio_base"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Producto) TableName() string {
	return "productos"
}
