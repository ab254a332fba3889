// Package router đăng ký các route thuộc domain video: video, danh mục, listing và tìm kiếm.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
	videohdl "meta_tube/internal/api/video/handler"
)

// Register đăng ký tất cả route video lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	videoHandler, err := videohdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("create video handler: %w", err)
	}
	viewHandler, err := videohdl.NewVideoViewHandler()
	if err != nil {
		return fmt.Errorf("create video view handler: %w", err)
	}
	categoryHandler, err := videohdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("create category handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware()
	optionalAuth := middleware.OptionalAuthMiddleware()

	// Các thao tác ghi: bắt buộc đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/video", "POST", "/", []fiber.Handler{authOnly}, videoHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/video", "PUT", "/:id", []fiber.Handler{authOnly}, videoHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/video", "DELETE", "/:id", []fiber.Handler{authOnly}, videoHandler.HandleDelete)

	// Listing / tìm kiếm công khai: viewer có thể ẩn danh
	apirouter.RegisterRouteWithMiddleware(v1, "/video", "GET", "/public", []fiber.Handler{optionalAuth}, viewHandler.HandleListPublic)
	apirouter.RegisterRouteWithMiddleware(v1, "/video", "GET", "/category/:categoryId", []fiber.Handler{optionalAuth}, viewHandler.HandleListByCategory)
	apirouter.RegisterRouteWithMiddleware(v1, "/video", "GET", "/channel/:channelId", []fiber.Handler{optionalAuth}, viewHandler.HandleListChannel)
	apirouter.RegisterRouteWithMiddleware(v1, "/video", "GET", "/search", []fiber.Handler{optionalAuth}, viewHandler.HandleSearchPublic)
	apirouter.RegisterRouteWithMiddleware(v1, "/video", "GET", "/detail/:idName", []fiber.Handler{optionalAuth}, viewHandler.HandleGetDetail)

	// Kênh của chính mình: bắt buộc đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/video", "GET", "/mine", []fiber.Handler{authOnly}, viewHandler.HandleListMine)
	apirouter.RegisterRouteWithMiddleware(v1, "/video", "GET", "/mine/search", []fiber.Handler{authOnly}, viewHandler.HandleSearchMine)

	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.ReadOnlyConfig)

	return nil
}
