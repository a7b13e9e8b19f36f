// Package router đăng ký các route thuộc domain order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"bioma_system/internal/api/middleware"
	orderhdl "bioma_system/internal/api/order/handler"
	apirouter "bioma_system/internal/api/router"
)

// Register đăng ký tất cả route đơn hàng lên v1.
func Register(v1 fiber.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("tạo OrderHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}

	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/", middlewares, orderHandler.HandleCreateOrder)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/", middlewares, orderHandler.FindWithPagination)
	// Route tĩnh /client/:cpf đăng ký trước /:number
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/client/:cpf", middlewares, orderHandler.HandleListByClient)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/:number", middlewares, orderHandler.HandleGetOrder)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PUT", "/:number/status", middlewares, orderHandler.HandleUpdateStatus)

	return nil
}
