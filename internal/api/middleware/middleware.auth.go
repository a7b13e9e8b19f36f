package middleware

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"bioma_system/internal/common"
	"bioma_system/internal/global"
	"bioma_system/internal/logger"
	"bioma_system/internal/utility"
)

// TokenClaims chứa thông tin user trong JWT payload
type TokenClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthManager quản lý xác thực người dùng.
// Token đã verify được cache để không phải parse + verify chữ ký mỗi request.
type AuthManager struct {
	Cache *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		authManagerInstance = &AuthManager{
			// Cache token đã verify với thời gian sống 5 phút, dọn dẹp mỗi 10 phút
			Cache: utility.NewCache(5*time.Minute, 10*time.Minute, 10000),
		}
	})
	return authManagerInstance
}

// verifyToken parse và verify JWT token, trả về claims nếu hợp lệ
func (am *AuthManager) verifyToken(tokenString string) (*TokenClaims, error) {
	// Kiểm tra cache trước để tối ưu hiệu suất
	if cached, found := am.Cache.Get(tokenString); found {
		claims := cached.(*TokenClaims)
		// Cache có thể sống lâu hơn token — vẫn phải kiểm tra hạn
		if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
			am.Cache.Delete(tokenString)
			return nil, common.ErrTokenExpired
		}
		return claims, nil
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(global.ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if strings.Contains(err.Error(), "expired") {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	// Lưu vào cache để sử dụng cho các lần sau
	am.Cache.Set(tokenString, claims)
	return claims, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Lấy bearer token từ header Authorization, verify chữ ký và hạn,
// lưu user_id / user_email / user_role vào Locals cho handler phía sau.
func AuthMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := authManager.verifyToken(parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token verification failed")
			HandleErrorResponse(c, err)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", claims.UserID)
		c.Locals("user_email", claims.Email)
		c.Locals("user_role", claims.Role)

		return c.Next()
	}
}
