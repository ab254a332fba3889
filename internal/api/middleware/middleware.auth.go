package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"meta_tube/internal/common"
	"meta_tube/internal/global"
	"meta_tube/internal/logger"
	"meta_tube/internal/utility"
)

// extractBearerToken lấy JWT token từ header Authorization (định dạng "Bearer <token>").
// Trả về chuỗi rỗng nếu header không có hoặc sai định dạng.
func extractBearerToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthMiddleware middleware xác thực bắt buộc cho Fiber.
// Parse và validate JWT token, lưu user_id vào context.
// Request không có token hợp lệ sẽ bị từ chối với 401.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("[AUTH] Thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		token := extractBearerToken(c)
		if token == "" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		userID, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("[AUTH] Token không hợp lệ")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin user vào context cho các handler phía sau
		c.Locals("user_id", userID)
		return c.Next()
	}
}

// AdminMiddleware middleware chỉ cho phép tài khoản role admin đi qua.
// Phải đặt sau AuthMiddleware (cần user_id trong context).
func AdminMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		userIDHex, ok := c.Locals("user_id").(string)
		if !ok || userIDHex == "" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		userID, err := primitive.ObjectIDFromHex(userIDHex)
		if err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		usersCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
		if !exist {
			HandleErrorResponse(c, common.ErrNotFound)
			return nil
		}

		var user struct {
			Role string `bson:"role"`
		}
		if err := usersCollection.FindOne(c.Context(), bson.M{"_id": userID}).Decode(&user); err != nil {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}
		if user.Role != "admin" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":    c.Path(),
				"user_id": userIDHex,
			}).Warn("[AUTH] Truy cập route admin bị từ chối")
			HandleErrorResponse(c, common.ErrForbidden)
			return nil
		}
		return c.Next()
	}
}

// OptionalAuthMiddleware middleware xác thực tùy chọn.
// Nếu request có token hợp lệ, lưu user_id vào context; nếu không có token,
// request vẫn đi tiếp như người xem ẩn danh. Dùng cho các route đọc công khai
// cần biết viewer để tính các trường isLiked/isDisliked.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractBearerToken(c)
		if token == "" {
			return c.Next()
		}

		userID, err := utility.ParseToken(global.MongoDB_ServerConfig.JwtSecret, token)
		if err != nil {
			// Token có nhưng không hợp lệ: coi như ẩn danh, không chặn request
			return c.Next()
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
