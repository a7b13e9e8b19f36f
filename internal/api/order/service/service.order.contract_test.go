// Package ordervc - Test dựng line items và tổng tiền đơn hàng.
package ordervc

import (
	"testing"

	orderdto "bioma_system/internal/api/order/dto"
	ordermodels "bioma_system/internal/api/order/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildOrderItems_TinhLineTotalVaTachTong(t *testing.T) {
	profID := primitive.NewObjectID()
	inputs := []orderdto.OrderItemInput{
		{Kind: ordermodels.OrderItemKindService, Name: "Corte", Quantity: 2, UnitPrice: 50, ProfessionalID: profID.Hex()},
		{Kind: ordermodels.OrderItemKindProduct, Name: "Shampoo", Quantity: 3, UnitPrice: 10},
	}

	items, totalServices, totalProducts := BuildOrderItems(inputs)
	if len(items) != 2 {
		t.Fatalf("kỳ vọng 2 items, nhận %d", len(items))
	}

	if items[0].LineTotal != 100 {
		t.Errorf("lineTotal dịch vụ 2 × 50 phải là 100, nhận %v", items[0].LineTotal)
	}
	if items[0].ProfessionalID != profID {
		t.Errorf("professionalId phải được parse từ hex, nhận %s", items[0].ProfessionalID.Hex())
	}
	if items[1].LineTotal != 30 {
		t.Errorf("lineTotal sản phẩm 3 × 10 phải là 30, nhận %v", items[1].LineTotal)
	}

	if totalServices != 100 {
		t.Errorf("totalServices kỳ vọng 100, nhận %v", totalServices)
	}
	if totalProducts != 30 {
		t.Errorf("totalProducts kỳ vọng 30, nhận %v", totalProducts)
	}
}

func TestBuildOrderItems_RefRongThanhNilObjectID(t *testing.T) {
	items, _, _ := BuildOrderItems([]orderdto.OrderItemInput{
		{Kind: ordermodels.OrderItemKindProduct, Name: "Avulso", Quantity: 1, UnitPrice: 5},
	})

	if !items[0].RefID.IsZero() {
		t.Errorf("refId rỗng phải thành NilObjectID, nhận %s", items[0].RefID.Hex())
	}
	if !items[0].ProfessionalID.IsZero() {
		t.Errorf("professionalId rỗng phải thành NilObjectID, nhận %s", items[0].ProfessionalID.Hex())
	}
}

func TestBuildOrderItems_DanhSachRong(t *testing.T) {
	items, totalServices, totalProducts := BuildOrderItems(nil)
	if len(items) != 0 || totalServices != 0 || totalProducts != 0 {
		t.Errorf("input rỗng phải trả về rỗng và tổng 0, nhận %d items / %v / %v",
			len(items), totalServices, totalProducts)
	}
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, status := range []string{
		ordermodels.OrderStatusPending,
		ordermodels.OrderStatusApproved,
		ordermodels.OrderStatusCancelled,
	} {
		if !ordermodels.IsValidOrderStatus(status) {
			t.Errorf("trạng thái %q phải hợp lệ", status)
		}
	}
	for _, status := range []string{"", "done", "PENDING", "aprovado"} {
		if ordermodels.IsValidOrderStatus(status) {
			t.Errorf("trạng thái %q không được hợp lệ", status)
		}
	}
}
