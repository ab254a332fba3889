// Package posthdl xử lý các request liên quan đến bài viết cộng đồng.
package posthdl

import (
	"fmt"

	basehdl "meta_tube/internal/api/base/handler"
	postdto "meta_tube/internal/api/post/dto"
	postmodels "meta_tube/internal/api/post/models"
	postsvc "meta_tube/internal/api/post/service"
	"meta_tube/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostHandler xử lý các yêu cầu liên quan đến bài viết
type PostHandler struct {
	*basehdl.BaseHandler[postmodels.Post, postdto.PostCreateInput, postdto.PostUpdateInput]
	postService *postsvc.PostService
}

// NewPostHandler khởi tạo PostHandler mới
func NewPostHandler() (*PostHandler, error) {
	service, err := postsvc.NewPostService()
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %v", err)
	}
	hdl := &PostHandler{postService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[postmodels.Post, postdto.PostCreateInput, postdto.PostUpdateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleCreate tạo bài viết mới cho người dùng đang đăng nhập
func (h *PostHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		var input postdto.PostCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		post, err := h.postService.CreatePost(c.Context(), userID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, post, nil)
		return nil
	})
}

// HandleUpdate cập nhật bài viết thuộc sở hữu của người dùng đang đăng nhập
func (h *PostHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		postID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		var input postdto.PostUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		post, err := h.postService.UpdatePost(c.Context(), userID, postID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, post, nil)
		return nil
	})
}

// HandleDelete xóa bài viết thuộc sở hữu của người dùng đang đăng nhập
func (h *PostHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		postID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		err = h.postService.DeletePost(c.Context(), userID, postID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleListByChannel trả về listing bài viết công khai của một kênh
func (h *PostHandler) HandleListByChannel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := primitive.ObjectIDFromHex(c.Params("channelId"))
		if err != nil {
			basehdl.HandleViewResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID kênh không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		viewerID := basehdl.GetUserIDFromLocals(c)
		pg := basehdl.ParseListPagination(c)
		result, err := h.postService.ListPublicPosts(c.Context(), channelID, viewerID, pg)
		basehdl.HandleViewResponse(c, result, err)
		return nil
	})
}

// HandleListMine trả về toàn bộ bài viết của chính người dùng đang đăng nhập
func (h *PostHandler) HandleListMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		pg := basehdl.ParseListPagination(c)
		result, err := h.postService.ListMyPosts(c.Context(), userID, pg)
		basehdl.HandleViewResponse(c, result, err)
		return nil
	})
}
