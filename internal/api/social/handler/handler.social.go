// Package socialhdl xử lý các request cạnh xã hội: đăng ký kênh, video đã
// lưu và lịch sử xem.
package socialhdl

import (
	"fmt"

	basehdl "meta_tube/internal/api/base/handler"
	socialsvc "meta_tube/internal/api/social/service"
	"meta_tube/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SocialHandler xử lý các yêu cầu liên quan đến đăng ký kênh, video đã lưu
// và lịch sử xem của người dùng đang đăng nhập.
type SocialHandler struct {
	subscriptionService *socialsvc.SubscriptionService
	bookmarkService     *socialsvc.BookmarkService
	historyService      *socialsvc.WatchHistoryService
}

// NewSocialHandler khởi tạo SocialHandler mới
func NewSocialHandler() (*SocialHandler, error) {
	subscriptionService, err := socialsvc.NewSubscriptionService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription service: %v", err)
	}
	bookmarkService, err := socialsvc.NewBookmarkService()
	if err != nil {
		return nil, fmt.Errorf("failed to create bookmark service: %v", err)
	}
	historyService, err := socialsvc.NewWatchHistoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create watch history service: %v", err)
	}
	return &SocialHandler{
		subscriptionService: subscriptionService,
		bookmarkService:     bookmarkService,
		historyService:      historyService,
	}, nil
}

// requireUserAndParam đọc user đang đăng nhập và một param ObjectID trên URL.
func requireUserAndParam(c fiber.Ctx, name string) (primitive.ObjectID, primitive.ObjectID, error) {
	userID := basehdl.GetUserIDFromLocals(c)
	if userID.IsZero() {
		return primitive.NilObjectID, primitive.NilObjectID, common.ErrTokenInvalid
	}
	paramID, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err)
	}
	return userID, paramID, nil
}

// HandleToggleSubscription đảo trạng thái đăng ký kênh của người dùng đang đăng nhập
func (h *SocialHandler) HandleToggleSubscription(c fiber.Ctx) error {
	userID, channelID, err := requireUserAndParam(c, "channelId")
	if err != nil {
		basehdl.HandleViewResponse(c, nil, err)
		return nil
	}
	subscribed, err := h.subscriptionService.Toggle(c.Context(), userID, channelID)
	if err != nil {
		basehdl.HandleViewResponse(c, nil, err)
		return nil
	}
	basehdl.HandleViewResponse(c, fiber.Map{"subscribed": subscribed}, nil)
	return nil
}

// HandleSubscriptionStatus trả về trạng thái đăng ký hiện tại của người dùng
// đang đăng nhập với một kênh (frontend dùng cho nút đăng ký trên trang kênh).
func (h *SocialHandler) HandleSubscriptionStatus(c fiber.Ctx) error {
	userID, channelID, err := requireUserAndParam(c, "channelId")
	if err != nil {
		basehdl.HandleViewResponse(c, nil, err)
		return nil
	}
	subscribed, err := h.subscriptionService.IsSubscribed(c.Context(), userID, channelID)
	if err != nil {
		basehdl.HandleViewResponse(c, nil, err)
		return nil
	}
	basehdl.HandleViewResponse(c, fiber.Map{"subscribed": subscribed}, nil)
	return nil
}

// HandleListSubscribedChannels trả về trang kênh mà người dùng đang đăng ký
func (h *SocialHandler) HandleListSubscribedChannels(c fiber.Ctx) error {
	userID := basehdl.GetUserIDFromLocals(c)
	if userID.IsZero() {
		basehdl.HandleViewResponse(c, nil, common.ErrTokenInvalid)
		return nil
	}
	pg := basehdl.ParseListPagination(c)
	result, err := h.subscriptionService.ListSubscribedChannels(c.Context(), userID, pg)
	basehdl.HandleViewResponse(c, result, err)
	return nil
}

// HandleAddBookmark lưu một video cho người dùng đang đăng nhập
func (h *SocialHandler) HandleAddBookmark(c fiber.Ctx) error {
	userID, videoID, err := requireUserAndParam(c, "videoId")
	if err != nil {
		basehdl.HandleViewResponse(c, nil, err)
		return nil
	}
	bookmark, err := h.bookmarkService.Add(c.Context(), userID, videoID)
	basehdl.HandleViewResponse(c, bookmark, err)
	return nil
}

// HandleRemoveBookmark gỡ một video đã lưu của người dùng đang đăng nhập
func (h *SocialHandler) HandleRemoveBookmark(c fiber.Ctx) error {
	userID, videoID, err := requireUserAndParam(c, "videoId")
	if err != nil {
		basehdl.HandleViewResponse(c, nil, err)
		return nil
	}
	err = h.bookmarkService.Remove(c.Context(), userID, videoID)
	basehdl.HandleViewResponse(c, nil, err)
	return nil
}

// HandleListBookmarks trả về trang video đã lưu của người dùng đang đăng nhập
func (h *SocialHandler) HandleListBookmarks(c fiber.Ctx) error {
	userID := basehdl.GetUserIDFromLocals(c)
	if userID.IsZero() {
		basehdl.HandleViewResponse(c, nil, common.ErrTokenInvalid)
		return nil
	}
	pg := basehdl.ParseListPagination(c)
	result, err := h.bookmarkService.List(c.Context(), userID, pg)
	basehdl.HandleViewResponse(c, result, err)
	return nil
}

// HandleRecordHistory ghi nhận người dùng đang đăng nhập vừa xem một video
func (h *SocialHandler) HandleRecordHistory(c fiber.Ctx) error {
	userID, videoID, err := requireUserAndParam(c, "videoId")
	if err != nil {
		basehdl.HandleViewResponse(c, nil, err)
		return nil
	}
	entry, err := h.historyService.Record(c.Context(), userID, videoID)
	basehdl.HandleViewResponse(c, entry, err)
	return nil
}

// HandleRemoveHistory gỡ một video khỏi lịch sử xem của người dùng đang đăng nhập
func (h *SocialHandler) HandleRemoveHistory(c fiber.Ctx) error {
	userID, videoID, err := requireUserAndParam(c, "videoId")
	if err != nil {
		basehdl.HandleViewResponse(c, nil, err)
		return nil
	}
	err = h.historyService.Remove(c.Context(), userID, videoID)
	basehdl.HandleViewResponse(c, nil, err)
	return nil
}

// HandleClearHistory xóa toàn bộ lịch sử xem của người dùng đang đăng nhập
func (h *SocialHandler) HandleClearHistory(c fiber.Ctx) error {
	userID := basehdl.GetUserIDFromLocals(c)
	if userID.IsZero() {
		basehdl.HandleViewResponse(c, nil, common.ErrTokenInvalid)
		return nil
	}
	deleted, err := h.historyService.Clear(c.Context(), userID)
	if err != nil {
		basehdl.HandleViewResponse(c, nil, err)
		return nil
	}
	basehdl.HandleViewResponse(c, fiber.Map{"deleted": deleted}, nil)
	return nil
}

// HandleListHistory trả về trang lịch sử xem của người dùng đang đăng nhập.
// Query searchQuery lọc theo tiêu đề video, không phân biệt hoa thường.
func (h *SocialHandler) HandleListHistory(c fiber.Ctx) error {
	userID := basehdl.GetUserIDFromLocals(c)
	if userID.IsZero() {
		basehdl.HandleViewResponse(c, nil, common.ErrTokenInvalid)
		return nil
	}
	pg := basehdl.ParseListPagination(c)
	result, err := h.historyService.List(c.Context(), userID, c.Query("searchQuery"), pg)
	basehdl.HandleViewResponse(c, result, err)
	return nil
}
