package commentmodels

import (
	authmodels "meta_tube/internal/api/auth/models"
	basemodels "meta_tube/internal/api/base/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentView là view bình luận gốc đã denormalize: tác giả, số trả lời,
// đếm reaction và cờ isLiked/isDisliked theo viewer.
type CommentView struct {
	ID           primitive.ObjectID     `json:"id" bson:"_id"`
	Author       authmodels.AuthorView  `json:"author" bson:"author"`
	Content      string                 `json:"content" bson:"content"`
	ReplyCount   int64                  `json:"replyCount" bson:"replyCount"`
	LikeCount    int64                  `json:"likeCount" bson:"likeCount"`
	DislikeCount int64                  `json:"dislikeCount" bson:"dislikeCount"`
	IsLiked      bool                   `json:"isLiked" bson:"isLiked"`
	IsDisliked   bool                   `json:"isDisliked" bson:"isDisliked"`
	ReplyAccount *authmodels.AuthorView `json:"replyAccount,omitempty" bson:"replyAccount,omitempty"`
	CreatedAt    int64                  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64                  `json:"updatedAt" bson:"updatedAt"`
}

// CommentListResult là kết quả phân trang bình luận gốc, kèm tổng số
// bình luận của toàn bộ thread (gốc + trả lời).
type CommentListResult struct {
	*basemodels.PaginateResult[CommentView]
	TotalRowsWithReplies int64 `json:"totalRowsWithReplies"`
}
