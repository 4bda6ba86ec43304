package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo is a parsed error: a stable code plus a user-facing message.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError converts database errors into a code and a message safe to
// return to clients. The context string names the resource being handled
// ("cliente", "domicilio", "producto").
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Ocurrió un error en el servidor",
		}
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    notFoundCode(context),
			Message: notFoundMessage(context),
		}
	}

	// Unique constraint violation (postgres 23505, sqlite "UNIQUE constraint failed")
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		if strings.Contains(errStr, "rfc") {
			return ErrorInfo{
				Code:    ClienteRFCDuplicado,
				Message: "Ya existe un cliente con ese RFC",
			}
		}
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "El registro ya existe",
		}
	}

	// Foreign key constraint violation (postgres 23503)
	if strings.Contains(errStr, "foreign key constraint") {
		return ErrorInfo{
			Code:    ClienteNotFound,
			Message: "El cliente asociado no existe",
		}
	}

	return ErrorInfo{
		Code:    InternalDatabaseError,
		Message: "Ocurrió un error en el servidor. Intente de nuevo más tarde",
	}
}

// IsDuplicate reports whether err is a unique constraint violation.
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint")
}

func notFoundCode(context string) string {
	switch context {
	case "cliente":
		return ClienteNotFound
	case "domicilio":
		return DomicilioNotFound
	case "producto":
		return ProductoNotFound
	default:
		return ResourceNotFound
	}
}

func notFoundMessage(context string) string {
	switch context {
	case "cliente":
		return "Cliente no encontrado"
	case "domicilio":
		return "Domicilio no encontrado"
	case "producto":
		return "Producto no encontrado"
	default:
		return "Recurso no encontrado"
	}
}
