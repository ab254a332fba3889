// Package videohdl xử lý các request liên quan đến video và danh mục.
package videohdl

import (
	"fmt"

	basehdl "meta_tube/internal/api/base/handler"
	videodto "meta_tube/internal/api/video/dto"
	videomodels "meta_tube/internal/api/video/models"
	videosvc "meta_tube/internal/api/video/service"
	"meta_tube/internal/common"
	"meta_tube/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoHandler xử lý các yêu cầu ghi liên quan đến video
type VideoHandler struct {
	*basehdl.BaseHandler[videomodels.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput]
	videoService *videosvc.VideoService
}

// NewVideoHandler khởi tạo VideoHandler mới
func NewVideoHandler() (*VideoHandler, error) {
	service, err := videosvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	hdl := &VideoHandler{videoService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[videomodels.Video, videodto.VideoCreateInput, videodto.VideoUpdateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleCreate tạo video mới cho người dùng đang đăng nhập
func (h *VideoHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		var input videodto.VideoCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		video, err := h.videoService.CreateVideo(c.Context(), userID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("create", "video", video.ID.Hex(), c, nil)
		h.HandleResponse(c, video, nil)
		return nil
	})
}

// HandleUpdate cập nhật video thuộc sở hữu của người dùng đang đăng nhập
func (h *VideoHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		videoID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		var input videodto.VideoUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		video, err := h.videoService.UpdateVideo(c.Context(), userID, videoID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, video, nil)
		return nil
	})
}

// HandleDelete xóa video thuộc sở hữu của người dùng đang đăng nhập
func (h *VideoHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		videoID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		err = h.videoService.DeleteVideo(c.Context(), userID, videoID)
		if err == nil {
			logger.LogCRUD("delete", "video", videoID.Hex(), c, nil)
		}
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// CategoryHandler xử lý các yêu cầu liên quan đến danh mục video
type CategoryHandler struct {
	*basehdl.BaseHandler[videomodels.Category, videodto.CategoryCreateInput, videodto.CategoryCreateInput]
	categoryService *videosvc.CategoryService
}

// NewCategoryHandler khởi tạo CategoryHandler mới
func NewCategoryHandler() (*CategoryHandler, error) {
	service, err := videosvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	hdl := &CategoryHandler{categoryService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[videomodels.Category, videodto.CategoryCreateInput, videodto.CategoryCreateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}
