package model

import "time"

type Cliente struct {
	ID                uint      `gorm:"primarykey" json:"id"`
	RazonSocial       string    `gorm:"size:255;not null" json:"razon_social"`
	NombreComercial   string    `gorm:"size:255;not null" json:"nombre_comercial"`
	RFC               string    `gorm:"size:13;uniqueIndex;not null" json:"rfc"`
	CorreoElectronico string    `gorm:"size:255;not null" json:"correo_electronico"`
	Telefono          string    `gorm:"size:20;not null" json:"telefono"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Domicilios []Domicilio `gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Cliente) TableName() string {
	return "clientes"
}
