package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "meta_tube/internal/api/auth/models"
)

// VideoSummaryView là một dòng trong listing video: video đã join tác giả và
// thumbnail. Thumbnail là URL đầy đủ hoặc chuỗi rỗng khi video không có ảnh
// (hoặc ảnh đã bị xóa) - video không bao giờ bị loại vì thiếu thumbnail.
type VideoSummaryView struct {
	ID        primitive.ObjectID    `json:"id" bson:"_id"`
	IdName    string                `json:"idName" bson:"idName"`
	Title     string                `json:"title" bson:"title"`
	Thumbnail string                `json:"thumbnail" bson:"thumbnail"`
	Author    authmodels.AuthorView `json:"author" bson:"author"`
	View      int64                 `json:"view" bson:"view"`
	CreatedAt int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64                 `json:"updatedAt" bson:"updatedAt"`
}

// VideoDetailView là trang chi tiết video: summary cộng mô tả, danh mục,
// audience, số bình luận và trạng thái reaction theo góc nhìn viewer.
type VideoDetailView struct {
	ID           primitive.ObjectID    `json:"id" bson:"_id"`
	IdName       string                `json:"idName" bson:"idName"`
	Title        string                `json:"title" bson:"title"`
	Description  string                `json:"description" bson:"description"`
	Thumbnail    string                `json:"thumbnail" bson:"thumbnail"`
	Author       authmodels.AuthorView `json:"author" bson:"author"`
	Category     string                `json:"category" bson:"category"`
	Audience     Audience              `json:"audience" bson:"audience"`
	View         int64                 `json:"view" bson:"view"`
	LikeCount    int64                 `json:"likeCount" bson:"likeCount"`
	DislikeCount int64                 `json:"dislikeCount" bson:"dislikeCount"`
	IsLiked      bool                  `json:"isLiked" bson:"isLiked"`
	IsDisliked   bool                  `json:"isDisliked" bson:"isDisliked"`
	CommentCount int64                 `json:"commentCount" bson:"commentCount"`
	CreatedAt    int64                 `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                 `json:"updatedAt" bson:"updatedAt"`
}
