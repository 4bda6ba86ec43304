package errors

// Error code constants, CATEGORY_SPECIFIC_DETAIL. Clients map these codes
// to their own messages; the Message field is a Spanish fallback.

const (
	// ==================== Validación (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"

	// ==================== Recursos (RESOURCE_) ====================
	ResourceNotFound = "RESOURCE_NOT_FOUND"

	// ==================== Clientes (CLIENTE_) ====================
	ClienteNotFound     = "CLIENTE_NOT_FOUND"
	ClienteRFCDuplicado = "CLIENTE_RFC_DUPLICADO"

	// ==================== Domicilios (DOMICILIO_) ====================
	DomicilioNotFound = "DOMICILIO_NOT_FOUND"

	// ==================== Productos (PRODUCTO_) ====================
	ProductoNotFound = "PRODUCTO_NOT_FOUND"

	// ==================== Errores internos (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
