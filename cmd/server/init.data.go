package main

import (
	"context"
	"time"

	videosvc "meta_tube/internal/api/video/service"
	"meta_tube/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// defaultCategories là các danh mục video có sẵn khi hệ thống khởi động lần đầu.
var defaultCategories = []struct {
	Name        string
	Description string
}{
	{"Music", "Âm nhạc, MV và biểu diễn"},
	{"Gaming", "Trò chơi điện tử và livestream game"},
	{"Education", "Bài giảng, hướng dẫn và khóa học"},
	{"Entertainment", "Giải trí tổng hợp"},
	{"Sports", "Thể thao và highlight"},
	{"News", "Tin tức và thời sự"},
	{"Technology", "Công nghệ, đánh giá thiết bị"},
	{"Travel", "Du lịch và khám phá"},
}

// InitDefaultData khởi tạo dữ liệu mặc định: các danh mục video cơ bản.
// Upsert theo tên nên chạy lại nhiều lần không tạo danh mục trùng lặp.
func InitDefaultData() {
	log := logger.GetAppLogger()

	categoryService, err := videosvc.NewCategoryService()
	if err != nil {
		log.Fatalf("Failed to initialize category service: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, c := range defaultCategories {
		_, err := categoryService.Upsert(ctx, bson.M{"name": c.Name}, map[string]interface{}{
			"name":        c.Name,
			"description": c.Description,
		})
		if err != nil {
			log.Warnf("Failed to seed category %s: %v", c.Name, err)
		}
	}

	log.Infof("Seeded %d default categories", len(defaultCategories))
}
