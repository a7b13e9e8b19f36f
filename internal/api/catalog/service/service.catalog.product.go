// Package catalogvc - Service sản phẩm và tồn kho (catalog_products).
package catalogvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "bioma_system/internal/api/base/service"
	catalogmodels "bioma_system/internal/api/catalog/models"
	"bioma_system/internal/common"
	"bioma_system/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductService xử lý logic sản phẩm.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService tạo ProductService mới.
func NewProductService() (*ProductService, error) {
	coll, exist := global.RegistryCollections.Get(global.ColNames.CatalogProducts)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.CatalogProducts, common.ErrNotFound)
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](coll),
	}, nil
}

// AdjustStock điều chỉnh tồn kho atomic bằng $inc có điều kiện.
// delta âm chỉ thành công khi tồn kho hiện tại đủ trừ — filter kèm
// stock >= -delta nên hai lần xuất song song không bao giờ đẩy stock âm.
func (s *ProductService) AdjustStock(ctx context.Context, id primitive.ObjectID, delta int) (catalogmodels.Product, error) {
	var zero catalogmodels.Product
	if delta == 0 {
		return zero, common.NewError(
			common.ErrCodeValidationInput,
			"delta phải khác 0",
			common.StatusBadRequest,
			nil,
		)
	}

	filter := bson.M{"_id": id}
	if delta < 0 {
		filter["stock"] = bson.M{"$gte": -delta}
	}

	updated, err := s.FindOneAndUpdate(ctx, filter, &basesvc.UpdateData{
		Inc: map[string]interface{}{"stock": delta},
	}, options.FindOneAndUpdate().SetReturnDocument(options.After))
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return zero, err
	}

	// Không match: phân biệt sản phẩm không tồn tại với tồn kho không đủ
	exists, existsErr := s.DocumentExists(ctx, bson.M{"_id": id})
	if existsErr != nil {
		return zero, existsErr
	}
	if !exists {
		return zero, common.ErrNotFound
	}
	return zero, common.NewError(
		common.ErrCodeBusinessOperation,
		fmt.Sprintf("Tồn kho không đủ để xuất %d đơn vị", -delta),
		common.StatusBadRequest,
		nil,
	)
}

// FindLowStock liệt kê các sản phẩm đang active có stock <= minStock.
func (s *ProductService) FindLowStock(ctx context.Context) ([]catalogmodels.Product, error) {
	return s.Find(ctx, bson.M{
		"active": true,
		"$expr":  bson.M{"$lte": bson.A{"$stock", "$minStock"}},
	}, options.Find().SetSort(bson.D{{Key: "stock", Value: 1}}))
}
