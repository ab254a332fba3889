// Package router đăng ký các route thuộc domain danh sách phát.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"meta_tube/internal/api/middleware"
	playlisthdl "meta_tube/internal/api/playlist/handler"
	apirouter "meta_tube/internal/api/router"
)

// Register đăng ký tất cả route danh sách phát lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	playlistHandler, err := playlisthdl.NewPlaylistHandler()
	if err != nil {
		return fmt.Errorf("create playlist handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware()
	optionalAuth := middleware.OptionalAuthMiddleware()

	// Các thao tác ghi: bắt buộc đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "POST", "/", []fiber.Handler{authOnly}, playlistHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "PUT", "/:id", []fiber.Handler{authOnly}, playlistHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "DELETE", "/:id", []fiber.Handler{authOnly}, playlistHandler.HandleDelete)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "POST", "/:id/video", []fiber.Handler{authOnly}, playlistHandler.HandleAddVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "DELETE", "/:id/video/:videoId", []fiber.Handler{authOnly}, playlistHandler.HandleRemoveVideo)

	// Listing: viewer có thể ẩn danh
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "GET", "/channel/:channelId", []fiber.Handler{optionalAuth}, playlistHandler.HandleListByChannel)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "GET", "/:id/videos", []fiber.Handler{optionalAuth}, playlistHandler.HandleListVideos)

	// Danh sách phát của chính mình: bắt buộc đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/playlist", "GET", "/mine", []fiber.Handler{authOnly}, playlistHandler.HandleListMine)

	return nil
}
