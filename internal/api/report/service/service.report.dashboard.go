// Package reportvc - Báo cáo tổng hợp: heatmap, doanh thu theo tháng, dashboard.
//
// Các báo cáo bucket hóa phía ứng dụng thay vì aggregation pipeline:
// zero-fill bucket (ngày/tháng không có dữ liệu vẫn xuất hiện) viết bằng
// Go đơn giản và test được, còn pipeline $group bỏ qua bucket rỗng.
package reportvc

import (
	"context"
	"fmt"
	"time"

	catalogvc "bioma_system/internal/api/catalog/service"
	ordermodels "bioma_system/internal/api/order/models"
	schedulemodels "bioma_system/internal/api/schedule/models"
	"bioma_system/internal/common"
	"bioma_system/internal/global"
	"bioma_system/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// Dashboard cache 60 giây — số liệu tổng quan không cần realtime từng request.
const dashboardCacheTTL = 60 * time.Second

// HeatmapDay một ô trong heatmap hoạt động theo ngày.
// Intensity = appointments + 2×approvedOrders: đơn chốt nặng ký hơn lịch hẹn.
type HeatmapDay struct {
	Date           string `json:"date"` // YYYY-MM-DD
	Appointments   int    `json:"appointments"`
	ApprovedOrders int    `json:"approvedOrders"`
	Intensity      int    `json:"intensity"`
}

// MonthSummary số liệu một tháng trong báo cáo năm.
type MonthSummary struct {
	Month      string  `json:"month"` // YYYY-MM
	Revenue    float64 `json:"revenue"`
	OrderCount int     `json:"orderCount"`
	NewClients int     `json:"newClients"`
}

// Dashboard số liệu tổng quan hiện tại.
type Dashboard struct {
	TotalClients      int64   `json:"totalClients"`
	PendingOrders     int64   `json:"pendingOrders"`
	TodayAppointments int64   `json:"todayAppointments"`
	MonthRevenue      float64 `json:"monthRevenue"`
	LowStockProducts  int     `json:"lowStockProducts"`
	GeneratedAt       int64   `json:"generatedAt"` // Unix ms
}

// ReportService tổng hợp số liệu từ các collection domain khác (chỉ đọc).
type ReportService struct {
	ProductService *catalogvc.ProductService
	cache          *utility.Cache
}

// NewReportService tạo ReportService mới.
func NewReportService() (*ReportService, error) {
	productSvc, err := catalogvc.NewProductService()
	if err != nil {
		return nil, err
	}
	return &ReportService{
		ProductService: productSvc,
		cache:          utility.NewCache(dashboardCacheTTL, 5*time.Minute, 16),
	}, nil
}

// BucketHeatmap gom đơn và lịch hẹn vào bucket ngày liên tục [from, to]
// (pure function). Ngày không có hoạt động vẫn có mặt với intensity 0.
func BucketHeatmap(from, to time.Time, orders []ordermodels.OrderContract, appointments []schedulemodels.Appointment) []HeatmapDay {
	var days []HeatmapDay
	index := make(map[string]int)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		index[key] = len(days)
		days = append(days, HeatmapDay{Date: key})
	}

	for _, appointment := range appointments {
		if i, ok := index[appointment.Date]; ok {
			days[i].Appointments++
		}
	}
	for _, order := range orders {
		if order.Status != ordermodels.OrderStatusApproved {
			continue
		}
		key := time.UnixMilli(order.CreatedAt).In(from.Location()).Format("2006-01-02")
		if i, ok := index[key]; ok {
			days[i].ApprovedOrders++
		}
	}

	for i := range days {
		days[i].Intensity = days[i].Appointments + 2*days[i].ApprovedOrders
	}
	return days
}

// GetHeatmap trả heatmap hoạt động theo ngày trong khoảng [from, to].
func (s *ReportService) GetHeatmap(ctx context.Context, fromStr, toStr string) ([]HeatmapDay, error) {
	from, err := time.ParseInLocation("2006-01-02", fromStr, time.Local)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("from '%s' không đúng định dạng YYYY-MM-DD", fromStr),
			common.StatusBadRequest,
			err,
		)
	}
	to, err := time.ParseInLocation("2006-01-02", toStr, time.Local)
	if err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("to '%s' không đúng định dạng YYYY-MM-DD", toStr),
			common.StatusBadRequest,
			err,
		)
	}
	if to.Before(from) {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"to phải sau hoặc bằng from",
			common.StatusBadRequest,
			nil,
		)
	}

	endExclusive := to.AddDate(0, 0, 1)

	orders, err := s.findOrders(ctx, bson.M{
		"status":    ordermodels.OrderStatusApproved,
		"createdAt": bson.M{"$gte": from.UnixMilli(), "$lt": endExclusive.UnixMilli()},
	})
	if err != nil {
		return nil, err
	}

	appointments, err := s.findAppointments(ctx, bson.M{
		"date": bson.M{"$gte": fromStr, "$lte": toStr},
	})
	if err != nil {
		return nil, err
	}

	return BucketHeatmap(from, to, orders, appointments), nil
}

// BucketMonthlySummary gom đơn và khách mới vào 12 bucket tháng của một năm
// (pure function). Doanh thu chỉ tính đơn approved; orderCount tính mọi đơn.
func BucketMonthlySummary(year int, orders []ordermodels.OrderContract, clientCreatedAts []int64) []MonthSummary {
	months := make([]MonthSummary, 12)
	for i := range months {
		months[i].Month = fmt.Sprintf("%04d-%02d", year, i+1)
	}

	monthOf := func(ms int64) int {
		t := time.UnixMilli(ms).In(time.Local)
		if t.Year() != year {
			return -1
		}
		return int(t.Month()) - 1
	}

	for _, order := range orders {
		i := monthOf(order.CreatedAt)
		if i < 0 {
			continue
		}
		months[i].OrderCount++
		if order.Status == ordermodels.OrderStatusApproved {
			months[i].Revenue += order.TotalFinal
		}
	}
	for _, createdAt := range clientCreatedAts {
		if i := monthOf(createdAt); i >= 0 {
			months[i].NewClients++
		}
	}

	for i := range months {
		months[i].Revenue = utility.Round2(months[i].Revenue)
	}
	return months
}

// GetMonthlySummary trả báo cáo 12 tháng của một năm.
func (s *ReportService) GetMonthlySummary(ctx context.Context, year int) ([]MonthSummary, error) {
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(1, 0, 0)
	rangeFilter := bson.M{"$gte": start.UnixMilli(), "$lt": end.UnixMilli()}

	orders, err := s.findOrders(ctx, bson.M{"createdAt": rangeFilter})
	if err != nil {
		return nil, err
	}

	clientCreatedAts, err := s.findClientCreatedAts(ctx, bson.M{"createdAt": rangeFilter})
	if err != nil {
		return nil, err
	}

	return BucketMonthlySummary(year, orders, clientCreatedAts), nil
}

// GetDashboard trả số liệu tổng quan, cache 60 giây.
func (s *ReportService) GetDashboard(ctx context.Context) (Dashboard, error) {
	if cached, found := s.cache.Get("dashboard"); found {
		return cached.(Dashboard), nil
	}

	var dashboard Dashboard
	now := time.Now()

	clientColl, exist := global.RegistryCollections.Get(global.ColNames.Clients)
	if exist {
		count, err := clientColl.CountDocuments(ctx, bson.M{})
		if err != nil {
			return dashboard, common.ConvertMongoError(err)
		}
		dashboard.TotalClients = count
	}

	orderColl, exist := global.RegistryCollections.Get(global.ColNames.OrderContracts)
	if exist {
		pending, err := orderColl.CountDocuments(ctx, bson.M{"status": ordermodels.OrderStatusPending})
		if err != nil {
			return dashboard, common.ConvertMongoError(err)
		}
		dashboard.PendingOrders = pending

		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local)
		monthOrders, err := s.findOrders(ctx, bson.M{
			"status":    ordermodels.OrderStatusApproved,
			"createdAt": bson.M{"$gte": monthStart.UnixMilli()},
		})
		if err != nil {
			return dashboard, err
		}
		for _, order := range monthOrders {
			dashboard.MonthRevenue += order.TotalFinal
		}
		dashboard.MonthRevenue = utility.Round2(dashboard.MonthRevenue)
	}

	appointmentColl, exist := global.RegistryCollections.Get(global.ColNames.Appointments)
	if exist {
		today, err := appointmentColl.CountDocuments(ctx, bson.M{"date": now.Format("2006-01-02")})
		if err != nil {
			return dashboard, common.ConvertMongoError(err)
		}
		dashboard.TodayAppointments = today
	}

	lowStock, err := s.ProductService.FindLowStock(ctx)
	if err != nil {
		return dashboard, err
	}
	dashboard.LowStockProducts = len(lowStock)
	dashboard.GeneratedAt = now.UnixMilli()

	s.cache.Set("dashboard", dashboard)
	return dashboard, nil
}

// findOrders đọc đơn hàng theo filter từ order_contracts.
func (s *ReportService) findOrders(ctx context.Context, filter bson.M) ([]ordermodels.OrderContract, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.OrderContracts)
	if !exist {
		return []ordermodels.OrderContract{}, nil
	}
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var orders []ordermodels.OrderContract
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return orders, nil
}

// findAppointments đọc lịch hẹn theo filter từ schedule_appointments.
func (s *ReportService) findAppointments(ctx context.Context, filter bson.M) ([]schedulemodels.Appointment, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Appointments)
	if !exist {
		return []schedulemodels.Appointment{}, nil
	}
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var appointments []schedulemodels.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return appointments, nil
}

// findClientCreatedAts đọc createdAt của các khách hàng match filter.
func (s *ReportService) findClientCreatedAts(ctx context.Context, filter bson.M) ([]int64, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.Clients)
	if !exist {
		return nil, nil
	}
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		CreatedAt int64 `bson:"createdAt"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	createdAts := make([]int64, 0, len(docs))
	for _, doc := range docs {
		createdAts = append(createdAts, doc.CreatedAt)
	}
	return createdAts, nil
}

