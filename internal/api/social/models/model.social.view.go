package socialmodels

import (
	videomodels "meta_tube/internal/api/video/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubscribedChannelView là view một kênh trong danh sách kênh đã đăng ký:
// thông tin kênh đã strip field nhạy cảm kèm tổng số người đăng ký kênh đó.
type SubscribedChannelView struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	Username       string             `json:"username" bson:"username"`
	ChannelName    string             `json:"channelName" bson:"channelName"`
	Avatar         string             `json:"avatar" bson:"avatar"`
	SubscribeCount int64              `json:"subscribeCount" bson:"subscribeCount"`
	SubscribedAt   int64              `json:"subscribedAt" bson:"subscribedAt"`
}

// BookmarkView là view một video đã lưu: tóm tắt video kèm thời điểm lưu
// (từ cạnh lưu, không phải video).
type BookmarkView struct {
	videomodels.VideoSummaryView `bson:",inline"`
	AddedAt                      int64 `json:"addedAt" bson:"addedAt"`
}

// WatchHistoryView là view một video trong lịch sử xem: tóm tắt video kèm
// lần xem gần nhất (từ cạnh lịch sử, không phải video).
type WatchHistoryView struct {
	videomodels.VideoSummaryView `bson:",inline"`
	ViewedAt                     int64 `json:"viewedAt" bson:"viewedAt"`
}
