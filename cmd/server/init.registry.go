package main

import (
	"meta_tube/config"
	"meta_tube/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	cols := global.MongoDB_ColNames
	colNames := []string{
		cols.Users,
		cols.Images,
		cols.Videos,
		cols.Categories,
		cols.Posts,
		cols.Comments,
		cols.Reactions,
		cols.Playlists,
		cols.PlaylistVideos,
		cols.Subscriptions,
		cols.Bookmarks,
		cols.WatchHistories,
		cols.Reports,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
