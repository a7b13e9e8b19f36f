// Package database - Index cho các collection nghiệp vụ (unique, compound).
package database

import (
	"context"
	"strings"

	"bioma_system/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateSalonIndexes tạo các index cho các collection nghiệp vụ.
// Gọi một lần khi khởi động server, sau khi kết nối MongoDB thành công.
func CreateSalonIndexes(ctx context.Context, db *mongo.Database) error {
	// auth_users: email unique — một tài khoản trên một email
	users := db.Collection(global.ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("auth_user_email").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// crm_clients: cpf unique sparse — định danh khách hàng
	clients := db.Collection(global.ColNames.Clients)
	if _, err := clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "cpf", Value: 1}},
		Options: options.Index().SetName("crm_client_cpf").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// crm_clients: metricsUpdatedAt — worker quét clients chưa đồng bộ metrics
	if _, err := clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "metricsUpdatedAt", Value: 1}},
		Options: options.Index().SetName("crm_client_metrics_updated"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// order_contracts: number unique — số đơn hàng cấp phát từ counter
	orders := db.Collection(global.ColNames.OrderContracts)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "number", Value: 1}},
		Options: options.Index().SetName("order_contract_number").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// order_contracts: (clientCpf, status) — recompute metrics và reports
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientCpf", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("order_contract_client_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// order_contracts: createdAt — range queries cho báo cáo theo kỳ
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: 1}},
		Options: options.Index().SetName("order_contract_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// commission_records: (professionalId, createdAt) — sổ hoa hồng theo chuyên viên, theo kỳ
	commissions := db.Collection(global.ColNames.CommissionRecords)
	if _, err := commissions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "professionalId", Value: 1},
			{Key: "createdAt", Value: 1},
		},
		Options: options.Index().SetName("commission_professional_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// commission_records: orderId — tra cứu ledger theo đơn hàng
	if _, err := commissions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "orderId", Value: 1}},
		Options: options.Index().SetName("commission_order"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// schedule_appointments: (professionalId, date, timeSlot) unique — chặn đặt trùng lịch
	appointments := db.Collection(global.ColNames.Appointments)
	if _, err := appointments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "professionalId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "timeSlot", Value: 1},
		},
		Options: options.Index().SetName("appointment_professional_slot").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// schedule_appointments: date — heatmap và truy vấn theo ngày
	if _, err := appointments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetName("appointment_date"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// catalog_products: stock — truy vấn tồn kho thấp cho worker cảnh báo
	products := db.Collection(global.ColNames.CatalogProducts)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "stock", Value: 1}},
		Options: options.Index().SetName("catalog_product_stock"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
