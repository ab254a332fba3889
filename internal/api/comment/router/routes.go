// Package router đăng ký các route thuộc domain bình luận và reaction.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	commenthdl "meta_tube/internal/api/comment/handler"
	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
)

// Register đăng ký tất cả route bình luận và reaction lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	commentHandler, err := commenthdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("create comment handler: %w", err)
	}
	reactionHandler, err := commenthdl.NewReactionHandler()
	if err != nil {
		return fmt.Errorf("create reaction handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware()
	optionalAuth := middleware.OptionalAuthMiddleware()

	// Các thao tác ghi bình luận: bắt buộc đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/comment", "POST", "/", []fiber.Handler{authOnly}, commentHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/comment", "PUT", "/:id", []fiber.Handler{authOnly}, commentHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/comment", "DELETE", "/:id", []fiber.Handler{authOnly}, commentHandler.HandleDelete)

	// Listing bình luận: viewer có thể ẩn danh (cờ isLiked/isDisliked luôn false)
	apirouter.RegisterRouteWithMiddleware(v1, "/comment", "GET", "/content/:contentId", []fiber.Handler{optionalAuth}, commentHandler.HandleListByContent)
	apirouter.RegisterRouteWithMiddleware(v1, "/comment", "GET", "/replies/:parentId", []fiber.Handler{optionalAuth}, commentHandler.HandleListReplies)

	// Reaction: bắt buộc đăng nhập
	apirouter.RegisterRouteWithMiddleware(v1, "/reaction", "POST", "/", []fiber.Handler{authOnly}, reactionHandler.HandleSet)
	apirouter.RegisterRouteWithMiddleware(v1, "/reaction", "DELETE", "/:contentId", []fiber.Handler{authOnly}, reactionHandler.HandleRemove)

	return nil
}
