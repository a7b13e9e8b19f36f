package global

import (
	"bioma_system/config"
	"bioma_system/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users             string // Tên collection cho người dùng hệ thống
	Clients           string // Tên collection cho khách hàng
	Professionals     string // Tên collection cho chuyên viên
	Assistants        string // Tên collection cho trợ lý
	CatalogServices   string // Tên collection cho dịch vụ trong danh mục
	CatalogProducts   string // Tên collection cho sản phẩm trong danh mục
	OrderContracts    string // Tên collection cho hợp đồng / đơn hàng
	OrderCounters     string // Tên collection cho bộ đếm số đơn hàng
	CommissionRecords string // Tên collection cho sổ hoa hồng
	Appointments      string // Tên collection cho lịch hẹn
}

// Các biến toàn cục
var Validate *validator.Validate                                     // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                    // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                               // Cấu hình của server
var ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)   // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections

// InitColNames gán tên thực cho các collection
func InitColNames() {
	ColNames.Users = "auth_users"
	ColNames.Clients = "crm_clients"
	ColNames.Professionals = "crm_professionals"
	ColNames.Assistants = "crm_assistants"
	ColNames.CatalogServices = "catalog_services"
	ColNames.CatalogProducts = "catalog_products"
	ColNames.OrderContracts = "order_contracts"
	ColNames.OrderCounters = "order_counters"
	ColNames.CommissionRecords = "commission_records"
	ColNames.Appointments = "schedule_appointments"
}
