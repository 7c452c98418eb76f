// file: internals/helpers/json_response.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Error helpers (standard shape)
=================================*/

type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
}

func statusToErrorCode(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusUnprocessableEntity:
		return "VALIDATION_ERROR"
	case fiber.StatusConflict:
		return "CONFLICT"
	default:
		if status >= 500 {
			return "INTERNAL_ERROR"
		}
		return "ERROR"
	}
}

// JsonError: error generic (bukan validasi)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(ErrorResponse{
		Success:   false,
		Message:   message,
		ErrorCode: statusToErrorCode(status),
	})
}

/* ===============================
   Soft failure (kontrak lama API attendance)
=================================*/

// StatusSoftFail adalah kode non-standar warisan kontrak lama: operasi
// diterima tapi tidak diterapkan (duplikat / tidak ditemukan).
const StatusSoftFail = 210

// JsonSoftFail mengirim body {"message": ...} polos dengan status 210,
// persis seperti kontrak API lama. Jangan dibungkus shape standar.
func JsonSoftFail(c *fiber.Ctx, message string) error {
	return c.Status(StatusSoftFail).JSON(fiber.Map{
		"message": message,
	})
}
