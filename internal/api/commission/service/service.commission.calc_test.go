// Package commissionvc - Test tính hoa hồng từ đơn hàng.
package commissionvc

import (
	"testing"

	commissionmodels "bioma_system/internal/api/commission/models"
	crmmodels "bioma_system/internal/api/crm/models"
	ordermodels "bioma_system/internal/api/order/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCalculateOrderCommissions_ChuyenVienCoBan(t *testing.T) {
	profID := primitive.NewObjectID()
	order := ordermodels.OrderContract{
		ID:            primitive.NewObjectID(),
		Number:        101,
		TotalServices: 200,
		Items: []ordermodels.OrderItem{
			serviceLine(profID, 200),
		},
	}
	professionals := map[primitive.ObjectID]crmmodels.Professional{
		profID: {ID: profID, Name: "Ana", CommissionPercent: 30},
	}

	records := CalculateOrderCommissions(order, professionals)
	if len(records) != 1 {
		t.Fatalf("kỳ vọng 1 bản ghi, nhận %d", len(records))
	}

	record := records[0]
	if record.Role != commissionmodels.CommissionRoleProfessional {
		t.Errorf("role sai: %s", record.Role)
	}
	if record.CommissionValue != 60 {
		t.Errorf("hoa hồng 200 × 30%% phải là 60, nhận %v", record.CommissionValue)
	}
	if record.BaseValue != order.TotalServices {
		t.Errorf("baseValue phải là totalServices (%v), nhận %v", order.TotalServices, record.BaseValue)
	}
	if record.OrderNumber != 101 {
		t.Errorf("orderNumber sai: %d", record.OrderNumber)
	}
	if record.ProfessionalName != "Ana" {
		t.Errorf("tên chuyên viên sai: %q", record.ProfessionalName)
	}
}

func TestCalculateOrderCommissions_TroLyAnTrenHoaHongKhongPhaiLine(t *testing.T) {
	profID := primitive.NewObjectID()
	assistantID := primitive.NewObjectID()
	order := ordermodels.OrderContract{
		Number:        102,
		TotalServices: 200,
		Items: []ordermodels.OrderItem{
			serviceLine(profID, 200),
		},
	}
	professionals := map[primitive.ObjectID]crmmodels.Professional{
		profID: {
			ID: profID, Name: "Ana", CommissionPercent: 30,
			Assistant: &crmmodels.AssistantRef{
				RefID:   assistantID,
				RefType: crmmodels.AssistantRefTypeAssistant,
				Percent: 50,
			},
		},
	}

	records := CalculateOrderCommissions(order, professionals)
	if len(records) != 2 {
		t.Fatalf("kỳ vọng 2 bản ghi (chuyên viên + trợ lý), nhận %d", len(records))
	}

	assistant := records[1]
	if assistant.Role != commissionmodels.CommissionRoleAssistant {
		t.Fatalf("bản ghi thứ hai phải là trợ lý, nhận role %s", assistant.Role)
	}
	// 50% của hoa hồng 60, không phải 50% của line 200
	if assistant.CommissionValue != 30 {
		t.Errorf("hoa hồng trợ lý phải là 30 (50%% của 60), nhận %v", assistant.CommissionValue)
	}
	if assistant.ProfessionalID != assistantID {
		t.Errorf("bản ghi trợ lý phải trỏ đến assistantID")
	}
	// RefType assistant không resolve được tên từ danh mục chuyên viên
	if assistant.ProfessionalName != "" {
		t.Errorf("tên trợ lý refType=assistant phải rỗng để caller resolve, nhận %q", assistant.ProfessionalName)
	}
}

func TestCalculateOrderCommissions_TroLyLaChuyenVienKhac(t *testing.T) {
	profID := primitive.NewObjectID()
	helperID := primitive.NewObjectID()
	order := ordermodels.OrderContract{
		Number:        103,
		TotalServices: 100,
		Items: []ordermodels.OrderItem{
			serviceLine(profID, 100),
		},
	}
	professionals := map[primitive.ObjectID]crmmodels.Professional{
		profID: {
			ID: profID, Name: "Ana", CommissionPercent: 40,
			Assistant: &crmmodels.AssistantRef{
				RefID:   helperID,
				RefType: crmmodels.AssistantRefTypeProfessional,
				Percent: 25,
			},
		},
		helperID: {ID: helperID, Name: "Bia", CommissionPercent: 40},
	}

	records := CalculateOrderCommissions(order, professionals)
	if len(records) != 2 {
		t.Fatalf("kỳ vọng 2 bản ghi, nhận %d", len(records))
	}
	if records[1].ProfessionalName != "Bia" {
		t.Errorf("trợ lý refType=professional phải resolve tên từ danh mục, nhận %q", records[1].ProfessionalName)
	}
	if records[1].CommissionValue != 10 {
		t.Errorf("hoa hồng trợ lý phải là 10 (25%% của 40), nhận %v", records[1].CommissionValue)
	}
}

func TestCalculateOrderCommissions_ChuyenVienKhongTrongDanhMuc(t *testing.T) {
	unknownID := primitive.NewObjectID()
	order := ordermodels.OrderContract{
		Number:        104,
		TotalServices: 150,
		Items: []ordermodels.OrderItem{
			serviceLine(unknownID, 150),
		},
	}

	records := CalculateOrderCommissions(order, map[primitive.ObjectID]crmmodels.Professional{})
	if len(records) != 1 {
		t.Fatalf("chuyên viên không rõ vẫn phải có bản ghi để sổ khớp đơn, nhận %d bản ghi", len(records))
	}
	if records[0].Percent != 0 || records[0].CommissionValue != 0 {
		t.Errorf("chuyên viên không rõ phải có percent 0 và hoa hồng 0, nhận %v / %v",
			records[0].Percent, records[0].CommissionValue)
	}
}

func TestCalculateOrderCommissions_LineSanPhamKhongSinhHoaHong(t *testing.T) {
	profID := primitive.NewObjectID()
	order := ordermodels.OrderContract{
		Number:        105,
		TotalServices: 100,
		TotalProducts: 500,
		Items: []ordermodels.OrderItem{
			serviceLine(profID, 100),
			{Kind: ordermodels.OrderItemKindProduct, Quantity: 5, UnitPrice: 100, LineTotal: 500},
		},
	}
	professionals := map[primitive.ObjectID]crmmodels.Professional{
		profID: {ID: profID, Name: "Ana", CommissionPercent: 10},
	}

	records := CalculateOrderCommissions(order, professionals)
	if len(records) != 1 {
		t.Fatalf("line sản phẩm không được sinh bản ghi, nhận %d bản ghi", len(records))
	}
	if records[0].CommissionValue != 10 {
		t.Errorf("hoa hồng chỉ tính trên line dịch vụ: kỳ vọng 10, nhận %v", records[0].CommissionValue)
	}
}

func TestCalculateOrderCommissions_NhieuLineCungChuyenVienCongDon(t *testing.T) {
	profID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	order := ordermodels.OrderContract{
		Number:        106,
		TotalServices: 350,
		Items: []ordermodels.OrderItem{
			serviceLine(profID, 100),
			serviceLine(otherID, 50),
			serviceLine(profID, 200),
		},
	}
	professionals := map[primitive.ObjectID]crmmodels.Professional{
		profID:  {ID: profID, Name: "Ana", CommissionPercent: 20},
		otherID: {ID: otherID, Name: "Bia", CommissionPercent: 10},
	}

	records := CalculateOrderCommissions(order, professionals)
	if len(records) != 2 {
		t.Fatalf("mỗi chuyên viên một bản ghi duy nhất, nhận %d", len(records))
	}
	// Giữ thứ tự xuất hiện trong đơn
	if records[0].ProfessionalID != profID || records[1].ProfessionalID != otherID {
		t.Fatal("thứ tự bản ghi phải theo thứ tự xuất hiện trong đơn")
	}
	if records[0].CommissionValue != 60 {
		t.Errorf("hoa hồng cộng dồn (100+200) × 20%% phải là 60, nhận %v", records[0].CommissionValue)
	}
	if records[1].CommissionValue != 5 {
		t.Errorf("hoa hồng 50 × 10%% phải là 5, nhận %v", records[1].CommissionValue)
	}
}

func TestCalculateOrderCommissions_DonKhongCoDichVu(t *testing.T) {
	order := ordermodels.OrderContract{
		Number:        107,
		TotalProducts: 80,
		Items: []ordermodels.OrderItem{
			{Kind: ordermodels.OrderItemKindProduct, Quantity: 2, UnitPrice: 40, LineTotal: 80},
		},
	}

	records := CalculateOrderCommissions(order, nil)
	if len(records) != 0 {
		t.Errorf("đơn chỉ có sản phẩm không được sinh bản ghi, nhận %d", len(records))
	}
}

// serviceLine tạo một line dịch vụ với lineTotal cho trước.
func serviceLine(professionalID primitive.ObjectID, lineTotal float64) ordermodels.OrderItem {
	return ordermodels.OrderItem{
		Kind:           ordermodels.OrderItemKindService,
		Quantity:       1,
		UnitPrice:      lineTotal,
		LineTotal:      lineTotal,
		ProfessionalID: professionalID,
	}
}
