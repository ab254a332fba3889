// Package router đăng ký các route cạnh xã hội: đăng ký kênh, video đã lưu,
// lịch sử xem.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
	socialhdl "meta_tube/internal/api/social/handler"
)

// Register đăng ký tất cả route xã hội lên v1. Toàn bộ đều gắn với người
// dùng đang đăng nhập nên bắt buộc xác thực.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	socialHandler, err := socialhdl.NewSocialHandler()
	if err != nil {
		return fmt.Errorf("create social handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware()

	apirouter.RegisterRouteWithMiddleware(v1, "/subscription", "POST", "/:channelId", []fiber.Handler{authOnly}, socialHandler.HandleToggleSubscription)
	apirouter.RegisterRouteWithMiddleware(v1, "/subscription", "GET", "/mine", []fiber.Handler{authOnly}, socialHandler.HandleListSubscribedChannels)
	apirouter.RegisterRouteWithMiddleware(v1, "/subscription", "GET", "/status/:channelId", []fiber.Handler{authOnly}, socialHandler.HandleSubscriptionStatus)

	apirouter.RegisterRouteWithMiddleware(v1, "/bookmark", "POST", "/:videoId", []fiber.Handler{authOnly}, socialHandler.HandleAddBookmark)
	apirouter.RegisterRouteWithMiddleware(v1, "/bookmark", "DELETE", "/:videoId", []fiber.Handler{authOnly}, socialHandler.HandleRemoveBookmark)
	apirouter.RegisterRouteWithMiddleware(v1, "/bookmark", "GET", "/mine", []fiber.Handler{authOnly}, socialHandler.HandleListBookmarks)

	apirouter.RegisterRouteWithMiddleware(v1, "/history", "POST", "/:videoId", []fiber.Handler{authOnly}, socialHandler.HandleRecordHistory)
	apirouter.RegisterRouteWithMiddleware(v1, "/history", "DELETE", "/:videoId", []fiber.Handler{authOnly}, socialHandler.HandleRemoveHistory)
	apirouter.RegisterRouteWithMiddleware(v1, "/history", "DELETE", "/", []fiber.Handler{authOnly}, socialHandler.HandleClearHistory)
	apirouter.RegisterRouteWithMiddleware(v1, "/history", "GET", "/mine", []fiber.Handler{authOnly}, socialHandler.HandleListHistory)

	return nil
}
