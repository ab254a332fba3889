package playlistmodels

import (
	videomodels "meta_tube/internal/api/video/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaylistSummaryView là view danh sách phát trong listing: số video,
// thumbnail của video đầu tiên (chuỗi rỗng khi danh sách trống) và
// idName của video đầu tiên để mở trang phát.
type PlaylistSummaryView struct {
	ID               primitive.ObjectID   `json:"id" bson:"_id"`
	Name             string               `json:"name" bson:"name"`
	Audience         videomodels.Audience `json:"audience" bson:"audience"`
	VideoCount       int64                `json:"videoCount" bson:"videoCount"`
	Thumbnail        string               `json:"thumbnail" bson:"thumbnail"`
	FirstVideoIdName string               `json:"firstVideoIdName" bson:"firstVideoIdName"`
	CreatedAt        int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64                `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistVideoView là view một video trong danh sách phát: tóm tắt video
// kèm thời điểm video được thêm vào danh sách (từ cạnh nối, không phải video).
type PlaylistVideoView struct {
	videomodels.VideoSummaryView `bson:",inline"`
	AddedAt                      int64 `json:"addedAt" bson:"addedAt"`
}
