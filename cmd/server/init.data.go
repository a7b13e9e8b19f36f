package main

import (
	"context"

	authsvc "bioma_system/internal/api/auth/service"
	"bioma_system/internal/global"
	"bioma_system/internal/logger"
)

// InitDefaultData seed dữ liệu tối thiểu để hệ thống dùng được ngay:
// tài khoản admin từ cấu hình (ADMIN_EMAIL / ADMIN_PASSWORD).
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	if !global.ServerConfig.InitMode && global.ServerConfig.AdminPassword == "" {
		log.Info("✅ [INIT] InitMode off và không có ADMIN_PASSWORD, bỏ qua seed")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	if err := userService.EnsureAdminUser(context.TODO()); err != nil {
		log.Warnf("Failed to ensure admin user: %v", err)
	} else {
		log.Info("✅ [INIT] Admin user ensured")
	}

	log.Info("✅ [INIT] InitDefaultData completed")
}
