package global

import (
	"meta_tube/config"
	"meta_tube/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Users          string // Tên collection cho người dùng / kênh
	Images         string // Tên collection cho metadata ảnh upload
	Videos         string // Tên collection cho video
	Categories     string // Tên collection cho danh mục video
	Posts          string // Tên collection cho bài viết cộng đồng
	Comments       string // Tên collection cho bình luận
	Reactions      string // Tên collection cho like/dislike
	Playlists      string // Tên collection cho playlist
	PlaylistVideos string // Tên collection cho quan hệ playlist - video
	Subscriptions  string // Tên collection cho đăng ký kênh
	Bookmarks      string // Tên collection cho video đã lưu
	WatchHistories string // Tên collection cho lịch sử xem
	Reports        string // Tên collection cho báo cáo vi phạm
}

// Các biến toàn cục
var Validate *validator.Validate                                             // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                            // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                               // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = *new(MongoDB_CollectionName)   // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
