package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lvargas/catalogos-backend/config"
	"github.com/lvargas/catalogos-backend/internal/app/controller"
	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/internal/app/repository"
	"github.com/lvargas/catalogos-backend/internal/app/service"
	"github.com/lvargas/catalogos-backend/internal/db"
	"github.com/lvargas/catalogos-backend/internal/metrics"
	"github.com/lvargas/catalogos-backend/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func setupIntegrationTest(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	clienteRepo := repository.NewClienteRepository(testDB)
	domicilioRepo := repository.NewDomicilioRepository(testDB)
	productoRepo := repository.NewProductoRepository(testDB)

	clienteService := service.NewClienteService(clienteRepo)
	domicilioService := service.NewDomicilioService(domicilioRepo, clienteRepo)
	productoService := service.NewProductoService(productoRepo)

	clienteController := controller.NewClienteController(clienteService)
	domicilioController := controller.NewDomicilioController(domicilioService)
	productoController := controller.NewProductoController(productoService)

	cfg := &config.Config{
		Server: config.ServerConfig{
			GinMode:     gin.TestMode,
			Environment: "test",
		},
		CloudWatch: config.CloudWatchConfig{
			Namespace: "CatalogosAPI",
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
		},
	}

	// Collector without credentials stays in log-only mode
	collector := metrics.New(&cfg.CloudWatch, cfg.Server.Environment)

	r := router.NewRouter(
		clienteController,
		domicilioController,
		productoController,
		collector,
		cfg,
	)

	return &TestServer{Router: r.Setup(), DB: testDB}
}

func (ts *TestServer) request(t *testing.T, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.request(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "healthy", response["status"])
	assert.Equal(t, "test", response["environment"])
}

func TestClienteLifecycle(t *testing.T) {
	ts := setupIntegrationTest(t)

	// Create
	w := ts.request(t, http.MethodPost, "/clientes", map[string]interface{}{
		"razon_social":       "Empresa Test SA de CV",
		"nombre_comercial":   "Test Company",
		"rfc":                "TEST123456AB1",
		"correo_electronico": "test@empresa.com",
		"telefono":           "5551234567",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var cliente map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cliente))
	clienteID := int(cliente["id"].(float64))
	require.NotZero(t, clienteID)

	// Read back
	w = ts.request(t, http.MethodGet, fmt.Sprintf("/clientes/%d", clienteID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Partial update
	w = ts.request(t, http.MethodPut, fmt.Sprintf("/clientes/%d", clienteID), map[string]interface{}{
		"nombre_comercial": "Updated Company",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Updated Company", updated["nombre_comercial"])
	assert.Equal(t, "Empresa Test SA de CV", updated["razon_social"])

	// Delete
	w = ts.request(t, http.MethodDelete, fmt.Sprintf("/clientes/%d", clienteID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = ts.request(t, http.MethodGet, fmt.Sprintf("/clientes/%d", clienteID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClienteCascadeDelete(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.request(t, http.MethodPost, "/clientes", map[string]interface{}{
		"razon_social":       "Empresa Test SA de CV",
		"nombre_comercial":   "Test Company",
		"rfc":                "TEST123456AB1",
		"correo_electronico": "test@empresa.com",
		"telefono":           "5551234567",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var cliente map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cliente))
	clienteID := int(cliente["id"].(float64))

	// Two domicilios under the cliente
	for _, tipo := range []string{"FACTURACION", "ENVIO"} {
		w = ts.request(t, http.MethodPost, fmt.Sprintf("/clientes/%d/domicilios", clienteID), map[string]interface{}{
			"domicilio":      "Calle Test 123",
			"colonia":        "Centro",
			"municipio":      "Guadalajara",
			"estado":         "Jalisco",
			"tipo_direccion": tipo,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Deleting the cliente removes its domicilios
	w = ts.request(t, http.MethodDelete, fmt.Sprintf("/clientes/%d", clienteID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	require.NoError(t, ts.DB.Model(&model.Domicilio{}).Where("cliente_id = ?", clienteID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDuplicateRFCConflict(t *testing.T) {
	ts := setupIntegrationTest(t)

	payload := map[string]interface{}{
		"razon_social":       "Empresa Test SA de CV",
		"nombre_comercial":   "Test Company",
		"rfc":                "TEST123456AB1",
		"correo_electronico": "test@empresa.com",
		"telefono":           "5551234567",
	}

	w := ts.request(t, http.MethodPost, "/clientes", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = ts.request(t, http.MethodPost, "/clientes", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestNotFoundForEveryResource(t *testing.T) {
	ts := setupIntegrationTest(t)

	for _, url := range []string{"/clientes/999999", "/domicilios/999999", "/productos/999999"} {
		w := ts.request(t, http.MethodGet, url, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, url)
	}
}

func TestProductoValidation(t *testing.T) {
	ts := setupIntegrationTest(t)

	w := ts.request(t, http.MethodPost, "/productos", map[string]interface{}{
		"nombre":        "Producto Test",
		"unidad_medida": "PZA",
		"precio_base":   -5,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
