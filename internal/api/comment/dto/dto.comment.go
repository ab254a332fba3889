// Package commentdto định nghĩa input cho bình luận và reaction.
package commentdto

// CommentCreateInput là dữ liệu đầu vào tạo bình luận mới
type CommentCreateInput struct {
	ContentID      string `json:"contentId" validate:"required,len=24" transform:"str_objectid,map=ContentID"`
	ContentType    string `json:"contentType" validate:"required,oneof=video post"`
	Content        string `json:"content" validate:"required,max=5000,no_xss"`
	ParentID       string `json:"parentId,omitempty" validate:"omitempty,len=24" transform:"str_objectid,map=ParentID,optional"`
	ReplyAccountID string `json:"replyAccountId,omitempty" validate:"omitempty,len=24" transform:"str_objectid,map=ReplyAccountID,optional"`
}

// CommentUpdateInput là dữ liệu đầu vào cập nhật nội dung bình luận
type CommentUpdateInput struct {
	Content string `json:"content" validate:"required,max=5000,no_xss"`
}

// ReactionSetInput là dữ liệu đầu vào đặt reaction trên một nội dung
type ReactionSetInput struct {
	ContentID   string `json:"contentId" validate:"required,len=24" transform:"str_objectid,map=ContentID"`
	ContentType string `json:"contentType" validate:"required,oneof=video post comment"`
	Type        string `json:"type" validate:"required,oneof=like dislike"`
}
