// Package router đăng ký các route thuộc domain báo cáo nội dung.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"meta_tube/internal/api/middleware"
	reporthdl "meta_tube/internal/api/report/handler"
	apirouter "meta_tube/internal/api/router"
)

// Register đăng ký tất cả route báo cáo lên v1.
// Tạo báo cáo cần đăng nhập; xem và xử lý báo cáo chỉ dành cho admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("create report handler: %w", err)
	}

	authOnly := middleware.AuthMiddleware()
	adminOnly := middleware.AdminMiddleware()

	apirouter.RegisterRouteWithMiddleware(v1, "/report", "POST", "/", []fiber.Handler{authOnly}, reportHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/", []fiber.Handler{authOnly, adminOnly}, reportHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "PUT", "/resolve/:id", []fiber.Handler{authOnly, adminOnly}, reportHandler.HandleResolve)

	return nil
}
