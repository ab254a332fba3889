// Package models - model video và danh mục thuộc domain video.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audience là phạm vi hiển thị của một nội dung.
// Chỉ nội dung "everyone" xuất hiện trong các listing công khai.
type Audience string

const (
	AudienceEveryone Audience = "everyone"
	AudienceOnlyMe   Audience = "onlyme"
)

// Valid kiểm tra giá trị audience có thuộc tập đóng không.
func (a Audience) Valid() bool {
	return a == AudienceEveryone || a == AudienceOnlyMe
}

// VideoStatus là trạng thái vòng đời của video.
type VideoStatus string

const (
	VideoStatusActive  VideoStatus = "active"
	VideoStatusBlocked VideoStatus = "blocked"
)

// Video định nghĩa mô hình video. IdName là slug công khai dùng trong URL.
// ThumbnailID/CategoryID là tham chiếu tùy chọn: ảnh hoặc danh mục bị xóa
// out-of-band không làm video biến mất khỏi listing (join tùy chọn).
type Video struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Title       string              `json:"title" bson:"title"`
	Description string              `json:"description,omitempty" bson:"description,omitempty"`
	IdName      string              `json:"idName" bson:"idName" index:"unique"`
	AccountID   primitive.ObjectID  `json:"accountId" bson:"accountId" index:"single:1"`
	ThumbnailID *primitive.ObjectID `json:"thumbnailId,omitempty" bson:"thumbnailId,omitempty"`
	CategoryID  *primitive.ObjectID `json:"categoryId,omitempty" bson:"categoryId,omitempty" index:"single:1"`
	View        int64               `json:"view" bson:"view"`
	Audience    Audience            `json:"audience" bson:"audience" default:"everyone" index:"single:1"`
	Status      VideoStatus         `json:"status" bson:"status" default:"active"`
	CreatedAt   int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64               `json:"updatedAt" bson:"updatedAt"`
}

// Category là danh mục video.
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
