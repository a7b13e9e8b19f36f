package database

import (
	"context"

	"bioma_system/internal/common"
	"bioma_system/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
)

// WithTransaction chạy fn trong một MongoDB transaction.
// Session được mở từ client, commit khi fn trả về nil, abort khi có lỗi.
// Yêu cầu MongoDB chạy dạng replica set; standalone sẽ trả lỗi khi start transaction.
func WithTransaction(ctx context.Context, client *mongo.Client, fn func(sessCtx mongo.SessionContext) (interface{}, error)) (interface{}, error) {
	session, err := client.StartSession()
	if err != nil {
		logger.GetErrorLogger().WithError(err).Error("Không mở được MongoDB session")
		return nil, common.ConvertMongoError(err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, fn)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return result, nil
}
