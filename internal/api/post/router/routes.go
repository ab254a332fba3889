// Package router đăng ký các route thuộc domain bài viết cộng đồng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"meta_tube/internal/api/middleware"
	posthdl "meta_tube/internal/api/post/handler"
	apirouter "meta_tube/internal/api/router"
)

// Register đăng ký tất cả route bài viết lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	postHandler, err := posthdl.NewPostHandler()
	if err != nil {
		return fmt.Errorf("create post handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware()
	optionalAuth := middleware.OptionalAuthMiddleware()

	// Các thao tác ghi: bắt buộc đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/post", "POST", "/", []fiber.Handler{authOnly}, postHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/post", "PUT", "/:id", []fiber.Handler{authOnly}, postHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/post", "DELETE", "/:id", []fiber.Handler{authOnly}, postHandler.HandleDelete)

	// Listing bài viết công khai của một kênh: viewer có thể ẩn danh
	apirouter.RegisterRouteWithMiddleware(v1, "/post", "GET", "/channel/:channelId", []fiber.Handler{optionalAuth}, postHandler.HandleListByChannel)

	// Bài viết của chính mình: bắt buộc đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/post", "GET", "/mine", []fiber.Handler{authOnly}, postHandler.HandleListMine)

	return nil
}
