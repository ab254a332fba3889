// Package commenthdl xử lý các request liên quan đến bình luận và reaction.
package commenthdl

import (
	"fmt"

	basehdl "meta_tube/internal/api/base/handler"
	commentdto "meta_tube/internal/api/comment/dto"
	commentmodels "meta_tube/internal/api/comment/models"
	commentsvc "meta_tube/internal/api/comment/service"
	"meta_tube/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentHandler xử lý các yêu cầu liên quan đến bình luận
type CommentHandler struct {
	*basehdl.BaseHandler[commentmodels.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput]
	commentService *commentsvc.CommentService
	viewService    *commentsvc.CommentViewService
}

// NewCommentHandler khởi tạo CommentHandler mới
func NewCommentHandler() (*CommentHandler, error) {
	service, err := commentsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}
	viewService, err := commentsvc.NewCommentViewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment view service: %v", err)
	}
	hdl := &CommentHandler{commentService: service, viewService: viewService}
	hdl.BaseHandler = basehdl.NewBaseHandler[commentmodels.Comment, commentdto.CommentCreateInput, commentdto.CommentUpdateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleCreate tạo bình luận mới cho người dùng đang đăng nhập
func (h *CommentHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		var input commentdto.CommentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		comment, err := h.commentService.CreateComment(c.Context(), userID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, comment, nil)
		return nil
	})
}

// HandleUpdate cập nhật bình luận thuộc sở hữu của người dùng đang đăng nhập
func (h *CommentHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		commentID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		var input commentdto.CommentUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		comment, err := h.commentService.UpdateComment(c.Context(), userID, commentID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, comment, nil)
		return nil
	})
}

// HandleDelete xóa bình luận thuộc sở hữu của người dùng đang đăng nhập.
// Xóa bình luận gốc kéo theo toàn bộ trả lời trực tiếp của nó.
func (h *CommentHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		commentID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		err = h.commentService.DeleteComment(c.Context(), userID, commentID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleListByContent trả về trang bình luận gốc của một nội dung
// (video hoặc bài viết), kèm tổng số bình luận toàn thread.
func (h *CommentHandler) HandleListByContent(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		contentID, err := primitive.ObjectIDFromHex(c.Params("contentId"))
		if err != nil {
			basehdl.HandleViewResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID nội dung không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		contentType := commentmodels.ContentType(c.Query("contentType", string(commentmodels.ContentTypeVideo)))
		if !contentType.Valid() || contentType == commentmodels.ContentTypeComment {
			basehdl.HandleViewResponse(c, nil, common.ErrInvalidInput)
			return nil
		}
		viewerID := basehdl.GetUserIDFromLocals(c)
		pg := basehdl.ParseListPagination(c)
		result, err := h.viewService.ListTopLevel(c.Context(), contentID, contentType, viewerID, pg)
		basehdl.HandleViewResponse(c, result, err)
		return nil
	})
}

// HandleListReplies trả về trang trả lời của một bình luận gốc
func (h *CommentHandler) HandleListReplies(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		parentID, err := primitive.ObjectIDFromHex(c.Params("parentId"))
		if err != nil {
			basehdl.HandleViewResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID bình luận không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		viewerID := basehdl.GetUserIDFromLocals(c)
		pg := basehdl.ParseListPagination(c)
		result, err := h.viewService.ListReplies(c.Context(), parentID, viewerID, pg)
		basehdl.HandleViewResponse(c, result, err)
		return nil
	})
}
