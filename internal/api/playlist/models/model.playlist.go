// Package playlistmodels định nghĩa model danh sách phát và thành viên của nó.
package playlistmodels

import (
	videomodels "meta_tube/internal/api/video/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Playlist là cấu trúc dữ liệu danh sách phát của một tài khoản
type Playlist struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	AccountID primitive.ObjectID   `json:"accountId" bson:"accountId" index:"single:1"`
	Name      string               `json:"name" bson:"name"`
	Audience  videomodels.Audience `json:"audience" bson:"audience" default:"everyone"`
	CreatedAt int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64                `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistVideo là cạnh nối một video vào một danh sách phát.
// Mỗi cặp (playlistId, videoId) chỉ tồn tại một lần; createdAt của cạnh
// quyết định thứ tự video trong danh sách phát.
type PlaylistVideo struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	PlaylistID primitive.ObjectID `json:"playlistId" bson:"playlistId" index:"compound:playlist_video_unique"`
	VideoID    primitive.ObjectID `json:"videoId" bson:"videoId" index:"compound:playlist_video_unique"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
