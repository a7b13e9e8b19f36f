// Package router đăng ký các route thuộc domain commission.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	commissionhdl "bioma_system/internal/api/commission/handler"
	"bioma_system/internal/api/middleware"
	apirouter "bioma_system/internal/api/router"
)

// Register đăng ký tất cả route sổ hoa hồng lên v1.
func Register(v1 fiber.Router) error {
	commissionHandler, err := commissionhdl.NewCommissionHandler()
	if err != nil {
		return fmt.Errorf("tạo CommissionHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}

	apirouter.RegisterRouteWithMiddleware(v1, "/commissions", "GET", "/order/:number", middlewares, commissionHandler.HandleGetByOrder)
	apirouter.RegisterRouteWithMiddleware(v1, "/commissions", "GET", "/professional/:id", middlewares, commissionHandler.HandleGetByProfessional)

	return nil
}
