// Package router đăng ký các route thuộc domain catalog: services, products.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "bioma_system/internal/api/catalog/handler"
	"bioma_system/internal/api/middleware"
	apirouter "bioma_system/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router) error {
	serviceHandler, err := cataloghdl.NewServiceItemHandler()
	if err != nil {
		return fmt.Errorf("tạo ServiceItemHandler: %w", err)
	}
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("tạo ProductHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}

	// Services — bảng giá dịch vụ
	apirouter.RegisterRouteWithMiddleware(v1, "/services", "POST", "/", middlewares, serviceHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, "/services", "GET", "/", middlewares, serviceHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/services", "GET", "/:id", middlewares, serviceHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/services", "PUT", "/:id", middlewares, serviceHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, "/services", "DELETE", "/:id", middlewares, serviceHandler.DeleteById)

	// Products — route tĩnh /low-stock phải đăng ký trước /:id
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "GET", "/low-stock", middlewares, productHandler.HandleListLowStock)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/", middlewares, productHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "GET", "/", middlewares, productHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "GET", "/:id", middlewares, productHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "PUT", "/:id", middlewares, productHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "DELETE", "/:id", middlewares, productHandler.DeleteById)
	apirouter.RegisterRouteWithMiddleware(v1, "/products", "POST", "/:id/stock", middlewares, productHandler.HandleAdjustStock)

	return nil
}
