package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/lvargas/catalogos-backend/config"
	"github.com/lvargas/catalogos-backend/internal/app/controller"
	"github.com/lvargas/catalogos-backend/internal/metrics"
	"github.com/lvargas/catalogos-backend/internal/middleware"
	"github.com/lvargas/catalogos-backend/internal/validation"
)

type Router struct {
	clienteController   *controller.ClienteController
	domicilioController *controller.DomicilioController
	productoController  *controller.ProductoController
	collector           *metrics.Collector
	config              *config.Config
}

func NewRouter(
	clienteController *controller.ClienteController,
	domicilioController *controller.DomicilioController,
	productoController *controller.ProductoController,
	collector *metrics.Collector,
	cfg *config.Config,
) *Router {
	return &Router{
		clienteController:   clienteController,
		domicilioController: domicilioController,
		productoController:  productoController,
		collector:           collector,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)
	validation.Register()

	router := gin.New()

	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		r.collector.RecordError("panic", fmt.Sprintf("%v", recovered))
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware(r.collector))
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":      "healthy",
			"environment": r.config.Server.Environment,
		})
	})

	clientes := router.Group("/clientes")
	{
		clientes.POST("", r.clienteController.CreateCliente)
		clientes.GET("", r.clienteController.ListClientes)
		clientes.GET("/:id", r.clienteController.GetCliente)
		clientes.PUT("/:id", r.clienteController.UpdateCliente)
		clientes.DELETE("/:id", r.clienteController.DeleteCliente)

		clientes.POST("/:id/domicilios", r.domicilioController.CreateDomicilio)
		clientes.GET("/:id/domicilios", r.domicilioController.ListDomicilios)
	}

	domicilios := router.Group("/domicilios")
	{
		domicilios.GET("/:id", r.domicilioController.GetDomicilio)
		domicilios.PUT("/:id", r.domicilioController.UpdateDomicilio)
		domicilios.DELETE("/:id", r.domicilioController.DeleteDomicilio)
	}

	productos := router.Group("/productos")
	{
		productos.POST("", r.productoController.CreateProducto)
		productos.GET("", r.productoController.ListProductos)
		productos.GET("/:id", r.productoController.GetProducto)
		productos.PUT("/:id", r.productoController.UpdateProducto)
		productos.DELETE("/:id", r.productoController.DeleteProducto)
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
