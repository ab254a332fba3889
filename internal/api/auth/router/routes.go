// Package router đăng ký các route thuộc domain auth: đăng ký, đăng nhập, profile, kênh.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "meta_tube/internal/api/auth/handler"
	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("create user handler: %w", err)
	}

	v1.Post("/auth/register", userHandler.HandleRegister)
	v1.Post("/auth/login", userHandler.HandleLogin)

	authOnly := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/me", []fiber.Handler{authOnly}, userHandler.HandleGetMe)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/me", []fiber.Handler{authOnly}, userHandler.HandleUpdateMe)

	// Trang kênh công khai: không bắt buộc đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/channel", "GET", "/:id", []fiber.Handler{middleware.OptionalAuthMiddleware()}, userHandler.HandleGetChannel)

	r.RegisterCRUDRoutes(v1, "/user", userHandler, apirouter.ReadOnlyConfig)

	return nil
}
