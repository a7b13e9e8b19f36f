// Package router đăng ký các route thuộc domain schedule.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"bioma_system/internal/api/middleware"
	apirouter "bioma_system/internal/api/router"
	schedulehdl "bioma_system/internal/api/schedule/handler"
)

// Register đăng ký tất cả route lịch hẹn lên v1.
func Register(v1 fiber.Router) error {
	appointmentHandler, err := schedulehdl.NewAppointmentHandler()
	if err != nil {
		return fmt.Errorf("tạo AppointmentHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}

	apirouter.RegisterRouteWithMiddleware(v1, "/appointments", "POST", "/", middlewares, appointmentHandler.HandleCreateAppointment)
	apirouter.RegisterRouteWithMiddleware(v1, "/appointments", "GET", "/", middlewares, appointmentHandler.HandleListAppointments)
	apirouter.RegisterRouteWithMiddleware(v1, "/appointments", "GET", "/:id", middlewares, appointmentHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(v1, "/appointments", "PUT", "/:id", middlewares, appointmentHandler.HandleUpdateAppointment)
	apirouter.RegisterRouteWithMiddleware(v1, "/appointments", "DELETE", "/:id", middlewares, appointmentHandler.DeleteById)

	return nil
}
