// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdto "bioma_system/internal/api/auth/dto"
	models "bioma_system/internal/api/auth/models"
	basesvc "bioma_system/internal/api/base/service"
	"bioma_system/internal/api/middleware"
	"bioma_system/internal/common"
	"bioma_system/internal/global"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("không tìm thấy collection %s: %w", global.ColNames.Users, common.ErrNotFound)
	}
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// signToken tạo JWT cho user với hạn từ cấu hình.
// Claims trùng cấu trúc middleware.TokenClaims để AuthMiddleware parse lại được.
func signToken(user models.User) (string, error) {
	now := time.Now()
	claims := middleware.TokenClaims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(global.ServerConfig.JwtExpireHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(global.ServerConfig.JwtSecret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không tạo được token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// Login đăng nhập bằng email + password, trả về user kèm JWT mới.
// Email không tồn tại và password sai trả cùng một lỗi 401 —
// không để dò được email nào có tài khoản.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa", common.StatusForbidden, nil)
	}

	token, err := signToken(user)
	if err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": updated.ID.Hex(),
		"email":   updated.Email,
	}).Info("Đăng nhập thành công")
	return &updated, nil
}

// CreateUser tạo tài khoản nhân viên mới với password đã hash bcrypt.
func (s *UserService) CreateUser(ctx context.Context, input *authdto.UserCreateInput) (models.User, error) {
	var zero models.User

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Không hash được password", common.StatusInternalServerError, err)
	}

	user := models.User{
		Email:    input.Email,
		Password: string(hash),
		Name:     input.Name,
		Role:     input.Role,
	}
	return s.InsertOne(ctx, user)
}

// EnsureAdminUser seed tài khoản admin từ cấu hình nếu chưa tồn tại.
// Bỏ qua khi AdminPassword trống — môi trường đó tự quản lý tài khoản.
func (s *UserService) EnsureAdminUser(ctx context.Context) error {
	if global.ServerConfig.AdminPassword == "" {
		return nil
	}

	exists, err := s.DocumentExists(ctx, bson.M{"email": global.ServerConfig.AdminEmail})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = s.CreateUser(ctx, &authdto.UserCreateInput{
		Email:    global.ServerConfig.AdminEmail,
		Password: global.ServerConfig.AdminPassword,
		Name:     "Administrator",
		Role:     models.UserRoleAdmin,
	})
	if err != nil {
		// Hai instance cùng seed: instance kia thắng là đủ
		if errors.Is(err, common.ErrDuplicate) {
			return nil
		}
		return err
	}

	logrus.WithField("email", global.ServerConfig.AdminEmail).Info("Đã seed tài khoản admin mặc định")
	return nil
}
