// Package router đăng ký các route thuộc domain auth.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "bioma_system/internal/api/auth/handler"
	"bioma_system/internal/api/middleware"
	apirouter "bioma_system/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1.
// /auth/login là route công khai duy nhất của toàn API.
func Register(v1 fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("tạo UserHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}

	// Login đăng ký dưới prefix riêng: group.Use() áp middleware theo prefix,
	// nếu /auth/me dùng chung prefix /auth thì login cũng bị đòi token
	apirouter.RegisterRouteWithMiddleware(v1, "/auth/login", "POST", "/", nil, userHandler.HandleLogin)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth/me", "GET", "/", middlewares, userHandler.HandleGetMe)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth/users", "POST", "/", middlewares, userHandler.HandleCreateUser)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth/users", "GET", "/", middlewares, userHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth/users", "PUT", "/:id", middlewares, userHandler.UpdateById)

	return nil
}
