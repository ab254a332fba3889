// Package socialmodels định nghĩa các model cạnh xã hội: đăng ký kênh,
// video đã lưu và lịch sử xem.
package socialmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// Subscription là cạnh đăng ký kênh: FromAccountID theo dõi ToAccountID.
// Mỗi cặp chỉ tồn tại một lần.
type Subscription struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FromAccountID primitive.ObjectID `json:"fromAccountId" bson:"fromAccountId" index:"compound:from_to_unique"`
	ToAccountID   primitive.ObjectID `json:"toAccountId" bson:"toAccountId" index:"compound:from_to_unique;single:1"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

// Bookmark là cạnh lưu video của một tài khoản. Mỗi cặp chỉ tồn tại một lần.
type Bookmark struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AccountID primitive.ObjectID `json:"accountId" bson:"accountId" index:"compound:account_video_unique"`
	VideoID   primitive.ObjectID `json:"videoId" bson:"videoId" index:"compound:account_video_unique"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// WatchHistory là cạnh lịch sử xem. Mỗi cặp (accountId, videoId) chỉ tồn tại
// một lần: xem lại cùng video chỉ đẩy updatedAt lên, không tạo bản ghi mới.
type WatchHistory struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AccountID primitive.ObjectID `json:"accountId" bson:"accountId" index:"compound:account_video_unique"`
	VideoID   primitive.ObjectID `json:"videoId" bson:"videoId" index:"compound:account_video_unique"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
