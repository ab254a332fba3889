// Package commentmodels định nghĩa model bình luận và reaction.
package commentmodels

import "go.mongodb.org/mongo-driver/bson/primitive"

// ContentType là loại nội dung mà bình luận / reaction gắn vào
type ContentType string

const (
	ContentTypeVideo   ContentType = "video"
	ContentTypePost    ContentType = "post"
	ContentTypeComment ContentType = "comment"
)

// Valid kiểm tra giá trị loại nội dung có hợp lệ không
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeVideo, ContentTypePost, ContentTypeComment:
		return true
	}
	return false
}

// ReactionType là loại reaction của người dùng trên một nội dung
type ReactionType string

const (
	ReactionTypeLike    ReactionType = "like"
	ReactionTypeDislike ReactionType = "dislike"
)

// Valid kiểm tra giá trị loại reaction có hợp lệ không
func (t ReactionType) Valid() bool {
	switch t {
	case ReactionTypeLike, ReactionTypeDislike:
		return true
	}
	return false
}

// Comment là cấu trúc dữ liệu bình luận trên video hoặc bài viết.
// ParentID = nil là bình luận gốc; khác nil là trả lời của bình luận gốc đó.
type Comment struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	ContentID      primitive.ObjectID  `json:"contentId" bson:"contentId" index:"single:1"`
	ContentType    ContentType         `json:"contentType" bson:"contentType"`
	AccountID      primitive.ObjectID  `json:"accountId" bson:"accountId" index:"single:1"`
	Content        string              `json:"content" bson:"content"`
	ParentID       *primitive.ObjectID `json:"parentId,omitempty" bson:"parentId,omitempty" index:"single:1"`
	ReplyAccountID *primitive.ObjectID `json:"replyAccountId,omitempty" bson:"replyAccountId,omitempty"`
	CreatedAt      int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64               `json:"updatedAt" bson:"updatedAt"`
}

// Reaction là cấu trúc dữ liệu like/dislike của một tài khoản trên một nội dung.
// Mỗi cặp (accountId, contentId) chỉ có tối đa một reaction.
type Reaction struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AccountID   primitive.ObjectID `json:"accountId" bson:"accountId" index:"compound:account_content_unique"`
	ContentID   primitive.ObjectID `json:"contentId" bson:"contentId" index:"compound:account_content_unique"`
	ContentType ContentType        `json:"contentType" bson:"contentType"`
	Type        ReactionType       `json:"type" bson:"type"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
