// Package reporthdl - Handler báo cáo.
package reporthdl

import (
	"fmt"
	"strconv"
	"time"

	basehdl "bioma_system/internal/api/base/handler"
	reportvc "bioma_system/internal/api/report/service"
	"bioma_system/internal/common"

	"github.com/gofiber/fiber/v3"
)

// ReportHandler xử lý API báo cáo tổng hợp.
type ReportHandler struct {
	ReportService *reportvc.ReportService
}

// NewReportHandler tạo ReportHandler mới.
func NewReportHandler() (*ReportHandler, error) {
	svc, err := reportvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("tạo ReportService: %w", err)
	}
	return &ReportHandler{ReportService: svc}, nil
}

// HandleGetHeatmap xử lý GET /reports/heatmap?from=YYYY-MM-DD&to=YYYY-MM-DD.
// Mặc định 30 ngày gần nhất khi không truyền khoảng.
func (h *ReportHandler) HandleGetHeatmap(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		from := c.Query("from")
		to := c.Query("to")
		if from == "" && to == "" {
			now := time.Now()
			to = now.Format("2006-01-02")
			from = now.AddDate(0, 0, -29).Format("2006-01-02")
		}
		if from == "" || to == "" {
			return basehdl.ErrorResponse(c, common.NewError(
				common.ErrCodeValidationInput,
				"Cần truyền cả from và to, hoặc bỏ trống cả hai",
				common.StatusBadRequest,
				nil,
			))
		}

		heatmap, err := h.ReportService.GetHeatmap(c.Context(), from, to)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, heatmap)
	})
}

// HandleGetMonthlySummary xử lý GET /reports/monthly?year=YYYY.
// Mặc định năm hiện tại.
func (h *ReportHandler) HandleGetMonthlySummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		year := time.Now().Year()
		if raw := c.Query("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 2000 || parsed > 2100 {
				return basehdl.ErrorResponse(c, common.NewError(
					common.ErrCodeValidationInput,
					fmt.Sprintf("year '%s' không hợp lệ", raw),
					common.StatusBadRequest,
					nil,
				))
			}
			year = parsed
		}

		summary, err := h.ReportService.GetMonthlySummary(c.Context(), year)
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, summary)
	})
}

// HandleGetDashboard xử lý GET /reports/dashboard — số liệu cache 60 giây.
func (h *ReportHandler) HandleGetDashboard(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		dashboard, err := h.ReportService.GetDashboard(c.Context())
		if err != nil {
			return basehdl.ErrorResponse(c, err)
		}
		return basehdl.SuccessResponse(c, common.StatusOK, dashboard)
	})
}
