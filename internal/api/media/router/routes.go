// Package router đăng ký các route thuộc domain media.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	mediahdl "meta_tube/internal/api/media/handler"
	"meta_tube/internal/api/middleware"
	apirouter "meta_tube/internal/api/router"
)

// Register đăng ký các route media lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	imageHandler, err := mediahdl.NewImageHandler()
	if err != nil {
		return fmt.Errorf("create image handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/image", "POST", "/", []fiber.Handler{middleware.AuthMiddleware()}, imageHandler.HandleCreate)
	r.RegisterCRUDRoutes(v1, "/image", imageHandler, apirouter.ReadOnlyConfig)

	return nil
}
