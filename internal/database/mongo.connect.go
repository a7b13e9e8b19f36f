package database

import (
	"context"
	"fmt"
	"time"

	"bioma_system/config"
	"bioma_system/internal/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
)

// GetInstance kết nối MongoDB và trả về *mongo.Client dùng chung cho cả app.
//
// Read/write concern majority là bắt buộc: duyệt đơn và gỡ duyệt chạy
// multi-document transaction (status + sổ hoa hồng), concern thấp hơn có
// thể đọc được trạng thái chưa commit. URI phải trỏ vào replica set.
func GetInstance(c *config.Configuration) (*mongo.Client, error) {
	if c.MongoDB_ConnectionURI == "" {
		return nil, fmt.Errorf("thiếu MONGODB_CONNECTION_URI")
	}

	clientOptions := options.Client().ApplyURI(c.MongoDB_ConnectionURI).
		SetAppName("bioma_system").
		SetWriteConcern(writeconcern.Majority()).
		SetReadConcern(readconcern.Majority()).
		SetRetryWrites(true).
		SetMaxPoolSize(50).                 // Trần connections — đủ cho API + 2 worker nền
		SetMinPoolSize(5).                  // Giữ sẵn connections cho worker chạy định kỳ
		SetConnectTimeout(5 * time.Second). // Timeout khi kết nối
		SetSocketTimeout(10 * time.Second)  // Timeout khi gửi nhận dữ liệu

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("kết nối MongoDB thất bại: %w", err)
	}

	// Ping để fail sớm ngay lúc khởi động thay vì ở request đầu tiên
	ctxPing, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelPing()

	if err := client.Ping(ctxPing, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB thất bại: %w", err)
	}

	logger.GetAppLogger().Info("Successfully connected to MongoDB")
	return client, nil
}

// CloseInstance đóng kết nối MongoDB khi shutdown.
func CloseInstance(client *mongo.Client) error {
	if err := client.Disconnect(context.TODO()); err != nil {
		logger.GetAppLogger().WithError(err).Error("Failed to disconnect MongoDB client")
		return err
	}
	logger.GetAppLogger().Info("Successfully disconnected from MongoDB")
	return nil
}
