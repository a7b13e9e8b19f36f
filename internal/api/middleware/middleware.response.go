package middleware

import (
	"errors"

	"bioma_system/internal/common"

	"github.com/gofiber/fiber/v3"
)

// HandleErrorResponse trả về error envelope chuẩn từ middleware.
// Custom error (*common.Error) giữ nguyên status code và error code;
// lỗi khác trả về 500 với code hệ thống.
func HandleErrorResponse(c fiber.Ctx, err error) {
	c.Set("Content-Type", "application/json; charset=utf-8")

	var customErr *common.Error
	if errors.As(err, &customErr) {
		_ = c.Status(customErr.StatusCode).JSON(fiber.Map{
			"success": false,
			"code":    customErr.Code.Code,
			"message": customErr.Message,
			"details": customErr.Details,
		})
		return
	}

	_ = c.Status(common.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"code":    common.ErrCodeInternalServer.Code,
		"message": err.Error(),
	})
}
