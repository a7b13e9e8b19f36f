// Package router đăng ký các route thuộc domain report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"bioma_system/internal/api/middleware"
	reporthdl "bioma_system/internal/api/report/handler"
	apirouter "bioma_system/internal/api/router"
)

// Register đăng ký tất cả route báo cáo lên v1.
func Register(v1 fiber.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("tạo ReportHandler: %w", err)
	}

	middlewares := []fiber.Handler{middleware.AuthMiddleware()}

	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/heatmap", middlewares, reportHandler.HandleGetHeatmap)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/monthly", middlewares, reportHandler.HandleGetMonthlySummary)
	apirouter.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/dashboard", middlewares, reportHandler.HandleGetDashboard)

	return nil
}
