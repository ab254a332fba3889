// Package mediahdl xử lý các request liên quan đến metadata ảnh.
package mediahdl

import (
	"fmt"

	basehdl "meta_tube/internal/api/base/handler"
	mediadto "meta_tube/internal/api/media/dto"
	mediamodels "meta_tube/internal/api/media/models"
	mediasvc "meta_tube/internal/api/media/service"
	"meta_tube/internal/common"
	"meta_tube/internal/logger"
	"meta_tube/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// ImageHandler xử lý các yêu cầu liên quan đến metadata ảnh
type ImageHandler struct {
	*basehdl.BaseHandler[mediamodels.Image, mediadto.ImageCreateInput, mediadto.ImageCreateInput]
	imageService *mediasvc.ImageService
}

// NewImageHandler khởi tạo ImageHandler mới
func NewImageHandler() (*ImageHandler, error) {
	service, err := mediasvc.NewImageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create image service: %v", err)
	}
	hdl := &ImageHandler{imageService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[mediamodels.Image, mediadto.ImageCreateInput, mediadto.ImageCreateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleCreate ghi nhận metadata ảnh mới, gắn chủ sở hữu từ token
func (h *ImageHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		var input mediadto.ImageCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		image := mediamodels.Image{
			Name:      input.Name,
			MimeType:  input.MimeType,
			Size:      input.Size,
			AccountID: userID,
		}
		created, err := h.imageService.InsertOne(c.Context(), image)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogCRUD("create", "image", created.ID.Hex(), c, map[string]interface{}{
			"name": created.Name,
			"size": utility.FormatBytes(uint64(created.Size)),
		})
		h.HandleResponse(c, fiber.Map{
			"image": created,
			"url":   h.imageService.PublicURL(created.Name),
		}, nil)
		return nil
	})
}
