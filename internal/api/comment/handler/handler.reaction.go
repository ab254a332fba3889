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

// ReactionHandler xử lý các yêu cầu liên quan đến reaction
type ReactionHandler struct {
	*basehdl.BaseHandler[commentmodels.Reaction, commentdto.ReactionSetInput, commentdto.ReactionSetInput]
	reactionService *commentsvc.ReactionService
}

// NewReactionHandler khởi tạo ReactionHandler mới
func NewReactionHandler() (*ReactionHandler, error) {
	service, err := commentsvc.NewReactionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create reaction service: %v", err)
	}
	hdl := &ReactionHandler{reactionService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[commentmodels.Reaction, commentdto.ReactionSetInput, commentdto.ReactionSetInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleSet đặt reaction của người dùng đang đăng nhập trên một nội dung.
// Đặt lại loại khác trên cùng nội dung sẽ ghi đè reaction cũ.
func (h *ReactionHandler) HandleSet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		var input commentdto.ReactionSetInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		reaction, err := h.reactionService.SetReaction(c.Context(), userID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, reaction, nil)
		return nil
	})
}

// HandleRemove gỡ reaction của người dùng đang đăng nhập khỏi một nội dung
func (h *ReactionHandler) HandleRemove(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		contentID, err := primitive.ObjectIDFromHex(c.Params("contentId"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID nội dung không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		err = h.reactionService.RemoveReaction(c.Context(), userID, contentID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
