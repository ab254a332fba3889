package main

import (
	"context"
	"meta_tube/config"
	authmodels "meta_tube/internal/api/auth/models"
	commentmodels "meta_tube/internal/api/comment/models"
	mediamodels "meta_tube/internal/api/media/models"
	playlistmodels "meta_tube/internal/api/playlist/models"
	postmodels "meta_tube/internal/api/post/models"
	reportmodels "meta_tube/internal/api/report/models"
	socialmodels "meta_tube/internal/api/social/models"
	videomodels "meta_tube/internal/api/video/models"
	"meta_tube/internal/database"
	"meta_tube/internal/global"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "users"
	global.MongoDB_ColNames.Images = "images"
	global.MongoDB_ColNames.Videos = "videos"
	global.MongoDB_ColNames.Categories = "categories"
	global.MongoDB_ColNames.Posts = "posts"
	global.MongoDB_ColNames.Comments = "comments"
	global.MongoDB_ColNames.Reactions = "reactions"
	global.MongoDB_ColNames.Playlists = "playlists"
	global.MongoDB_ColNames.PlaylistVideos = "playlist_videos"
	global.MongoDB_ColNames.Subscriptions = "subscriptions"
	global.MongoDB_ColNames.Bookmarks = "bookmarks"
	global.MongoDB_ColNames.WatchHistories = "watch_histories"
	global.MongoDB_ColNames.Reports = "reports"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection theo tag index trên model
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	cols := global.MongoDB_ColNames
	database.CreateIndexes(context.TODO(), db.Collection(cols.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.Images), mediamodels.Image{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.Videos), videomodels.Video{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.Categories), videomodels.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.Posts), postmodels.Post{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.Comments), commentmodels.Comment{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.Reactions), commentmodels.Reaction{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.Playlists), playlistmodels.Playlist{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.PlaylistVideos), playlistmodels.PlaylistVideo{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.Subscriptions), socialmodels.Subscription{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.Bookmarks), socialmodels.Bookmark{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.WatchHistories), socialmodels.WatchHistory{})
	database.CreateIndexes(context.TODO(), db.Collection(cols.Reports), reportmodels.Report{})
}
