// Package models - model bài viết cộng đồng (Post) thuộc domain post.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "meta_tube/internal/api/auth/models"
	videomodels "meta_tube/internal/api/video/models"
)

// Post định nghĩa mô hình bài viết cộng đồng của một kênh.
// Images là danh sách tham chiếu ảnh đính kèm (tùy chọn).
type Post struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	AccountID primitive.ObjectID   `json:"accountId" bson:"accountId" index:"single:1"`
	Content   string               `json:"content" bson:"content"`
	Images    []primitive.ObjectID `json:"images,omitempty" bson:"images,omitempty"`
	Audience  videomodels.Audience `json:"audience" bson:"audience" default:"everyone"`
	CreatedAt int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64                `json:"updatedAt" bson:"updatedAt"`
}

// PostView là một dòng trong listing bài viết: bài viết đã join tác giả,
// ảnh đính kèm đã thành URL, kèm đếm reaction theo góc nhìn viewer.
type PostView struct {
	ID           primitive.ObjectID    `json:"id" bson:"_id"`
	Author       authmodels.AuthorView `json:"author" bson:"author"`
	Content      string                `json:"content" bson:"content"`
	Images       []string              `json:"images" bson:"imageUrls"`
	LikeCount    int64                 `json:"likeCount" bson:"likeCount"`
	DislikeCount int64                 `json:"dislikeCount" bson:"dislikeCount"`
	IsLiked      bool                  `json:"isLiked" bson:"isLiked"`
	IsDisliked   bool                  `json:"isDisliked" bson:"isDisliked"`
	CreatedAt    int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                 `json:"updatedAt" bson:"updatedAt"`
}
