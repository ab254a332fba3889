package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthorView là dữ liệu tác giả đã denormalize, nhúng vào các read model
// (video, post, comment, playlist...). Avatar là URL đầy đủ hoặc chuỗi rỗng
// khi user không có ảnh đại diện. Các field nhạy cảm đã bị strip ở pipeline
// nên không có mặt trong struct này.
type AuthorView struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Username    string             `json:"username" bson:"username"`
	ChannelName string             `json:"channelName" bson:"channelName"`
	Avatar      string             `json:"avatar" bson:"avatar"`
}

// ChannelProfileView là trang kênh công khai của một tài khoản:
// đầy đủ hơn AuthorView (bio, cover, số người đăng ký).
type ChannelProfileView struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	Username       string             `json:"username" bson:"username"`
	ChannelName    string             `json:"channelName" bson:"channelName"`
	Bio            string             `json:"bio" bson:"bio"`
	Avatar         string             `json:"avatar" bson:"avatar"`
	Cover          string             `json:"cover" bson:"cover"`
	SubscribeCount int64              `json:"subscribeCount" bson:"subscribeCount"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
}
