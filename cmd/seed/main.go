package main

import (
	"fmt"
	"log"

	"github.com/lvargas/catalogos-backend/config"
	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/internal/app/repository"
	"github.com/lvargas/catalogos-backend/internal/db"
)

// Seeds a handful of sample catalog records for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	if err := db.Initialize(&cfg.Database); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	clienteRepo := repository.NewClienteRepository(db.GetDB())
	domicilioRepo := repository.NewDomicilioRepository(db.GetDB())
	productoRepo := repository.NewProductoRepository(db.GetDB())

	clientes := []model.Cliente{
		{
			RazonSocial:       "Comercializadora del Bajío SA de CV",
			NombreComercial:   "ComBajío",
			RFC:               "CBA010203AB1",
			CorreoElectronico: "contacto@combajio.mx",
			Telefono:          "4771234567",
		},
		{
			RazonSocial:       "Distribuidora Oriente SA de CV",
			NombreComercial:   "DistOriente",
			RFC:               "DOR950607CD2",
			CorreoElectronico: "ventas@distoriente.mx",
			Telefono:          "5559876543",
		},
	}

	for i := range clientes {
		if err := clienteRepo.Create(&clientes[i]); err != nil {
			log.Fatal("Failed to seed cliente:", err)
		}
	}

	domicilios := []model.Domicilio{
		{
			Domicilio:     "Blvd. López Mateos 102",
			Colonia:       "Centro",
			Municipio:     "León",
			Estado:        "Guanajuato",
			TipoDireccion: model.TipoFacturacion,
			ClienteID:     clientes[0].ID,
		},
		{
			Domicilio:     "Av. Insurgentes Sur 450",
			Colonia:       "Roma Norte",
			Municipio:     "Cuauhtémoc",
			Estado:        "Ciudad de México",
			TipoDireccion: model.TipoEnvio,
			ClienteID:     clientes[1].ID,
		},
	}

	for i := range domicilios {
		if err := domicilioRepo.Create(&domicilios[i]); err != nil {
			log.Fatal("Failed to seed domicilio:", err)
		}
	}

	productos := []model.Producto{
		{Nombre: "Caja de archivo tamaño oficio", UnidadMedida: "PZA", PrecioBase: 89.50},
		{Nombre: "Papel bond carta 500 hojas", UnidadMedida: "PAQ", PrecioBase: 129.00},
		{Nombre: "Tóner negro genérico", UnidadMedida: "PZA", PrecioBase: 549.90},
	}

	for i := range productos {
		if err := productoRepo.Create(&productos[i]); err != nil {
			log.Fatal("Failed to seed producto:", err)
		}
	}

	fmt.Printf("Seed completed: %d clientes, %d domicilios, %d productos\n",
		len(clientes), len(domicilios), len(productos))
}
