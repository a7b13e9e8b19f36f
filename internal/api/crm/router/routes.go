// Package router đăng ký các route thuộc domain CRM: clients, professionals, assistants.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	crmhdl "bioma_system/internal/api/crm/handler"
	"bioma_system/internal/api/middleware"
	apirouter "bioma_system/internal/api/router"
)

// Register đăng ký tất cả route CRM lên v1.
func Register(v1 fiber.Router) error {
	clientHandler, err := crmhdl.NewClientHandler()
	if err != nil {
		return fmt.Errorf("tạo ClientHandler: %w", err)
	}
	professionalHandler, err := crmhdl.NewProfessionalHandler()
	if err != nil {
		return fmt.Errorf("tạo ProfessionalHandler: %w", err)
	}
	assistantHandler, err := crmhdl.NewAssistantHandler()
	if err != nil {
		return fmt.Errorf("tạo AssistantHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}

	// Clients — định danh theo CPF
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "POST", "/", middlewares, clientHandler.HandleCreateClient)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/", middlewares, clientHandler.FindWithPagination)
	// GET theo CPF có lazy backfill metrics nếu chưa từng được tính
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/:cpf", middlewares, clientHandler.HandleGetClient)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "PUT", "/:cpf", middlewares, clientHandler.HandleUpdateClient)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "DELETE", "/:cpf", middlewares, clientHandler.HandleDeleteClient)
	apirouter.RegisterRouteWithMiddleware(v1, "/clients", "POST", "/:cpf/recalculate", middlewares, clientHandler.HandleRecalculateClient)

	// Professionals
	apirouter.RegisterRouteWithMiddleware(v1, "/professionals", "POST", "/", middlewares, professionalHandler.HandleCreateProfessional)
	apirouter.RegisterRouteWithMiddleware(v1, "/professionals", "GET", "/", middlewares, professionalHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/professionals", "GET", "/:id", middlewares, professionalHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/professionals", "PUT", "/:id", middlewares, professionalHandler.HandleUpdateProfessional)
	apirouter.RegisterRouteWithMiddleware(v1, "/professionals", "DELETE", "/:id", middlewares, professionalHandler.DeleteById)
	// GET /professionals/:id/performance?months=N — hoa hồng theo tháng, zero-fill
	apirouter.RegisterRouteWithMiddleware(v1, "/professionals", "GET", "/:id/performance", middlewares, professionalHandler.HandleGetPerformance)

	// Assistants — CRUD thuần
	apirouter.RegisterRouteWithMiddleware(v1, "/assistants", "POST", "/", middlewares, assistantHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(v1, "/assistants", "GET", "/", middlewares, assistantHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(v1, "/assistants", "GET", "/:id", middlewares, assistantHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/assistants", "PUT", "/:id", middlewares, assistantHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(v1, "/assistants", "DELETE", "/:id", middlewares, assistantHandler.DeleteById)

	return nil
}
