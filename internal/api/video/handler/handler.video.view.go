package videohdl

import (
	"fmt"

	basehdl "meta_tube/internal/api/base/handler"
	videosvc "meta_tube/internal/api/video/service"
	"meta_tube/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoViewHandler xử lý các endpoint đọc listing / chi tiết video
type VideoViewHandler struct {
	viewService  *videosvc.VideoViewService
	videoService *videosvc.VideoService
}

// NewVideoViewHandler khởi tạo VideoViewHandler mới
func NewVideoViewHandler() (*VideoViewHandler, error) {
	viewService, err := videosvc.NewVideoViewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video view service: %v", err)
	}
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	return &VideoViewHandler{viewService: viewService, videoService: videoService}, nil
}

// handleResponse chuẩn hóa response cho các handler view của domain này
func handleResponse(c fiber.Ctx, data interface{}, err error) {
	basehdl.HandleViewResponse(c, data, err)
}

// parseSort lấy tham số sắp xếp của listing từ query
func parseSort(c fiber.Ctx) videosvc.VideoSort {
	return videosvc.VideoSort{
		SortBy:  c.Query("sortBy"),
		OrderBy: c.Query("orderBy"),
	}
}

// HandleListPublic listing video công khai
func (h *VideoViewHandler) HandleListPublic(c fiber.Ctx) error {
	result, err := h.viewService.ListPublicVideos(c.Context(), parseSort(c), basehdl.ParseListPagination(c))
	handleResponse(c, result, err)
	return nil
}

// HandleListByCategory listing video công khai theo danh mục
func (h *VideoViewHandler) HandleListByCategory(c fiber.Ctx) error {
	categoryID, err := primitive.ObjectIDFromHex(c.Params("categoryId"))
	if err != nil {
		handleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID danh mục không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	result, err := h.viewService.ListVideosByCategory(c.Context(), categoryID, parseSort(c), basehdl.ParseListPagination(c))
	handleResponse(c, result, err)
	return nil
}

// HandleListMine listing toàn bộ video của người dùng đang đăng nhập
func (h *VideoViewHandler) HandleListMine(c fiber.Ctx) error {
	userID := basehdl.GetUserIDFromLocals(c)
	if userID.IsZero() {
		handleResponse(c, nil, common.ErrTokenInvalid)
		return nil
	}
	result, err := h.viewService.ListMyVideos(c.Context(), userID, parseSort(c), basehdl.ParseListPagination(c))
	handleResponse(c, result, err)
	return nil
}

// HandleListChannel listing video công khai của một kênh
func (h *VideoViewHandler) HandleListChannel(c fiber.Ctx) error {
	channelID, err := primitive.ObjectIDFromHex(c.Params("channelId"))
	if err != nil {
		handleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID kênh không hợp lệ", common.StatusBadRequest, err))
		return nil
	}
	result, err := h.viewService.ListChannelVideos(c.Context(), channelID, parseSort(c), basehdl.ParseListPagination(c))
	handleResponse(c, result, err)
	return nil
}

// HandleSearchPublic tìm kiếm video công khai theo title
func (h *VideoViewHandler) HandleSearchPublic(c fiber.Ctx) error {
	searchQuery := c.Query("searchQuery")
	if searchQuery == "" {
		handleResponse(c, nil, common.ErrRequiredField)
		return nil
	}
	result, err := h.viewService.SearchPublicVideos(c.Context(), searchQuery, basehdl.ParseListPagination(c))
	handleResponse(c, result, err)
	return nil
}

// HandleSearchMine tìm kiếm trong kênh của người dùng đang đăng nhập
func (h *VideoViewHandler) HandleSearchMine(c fiber.Ctx) error {
	userID := basehdl.GetUserIDFromLocals(c)
	if userID.IsZero() {
		handleResponse(c, nil, common.ErrTokenInvalid)
		return nil
	}
	searchQuery := c.Query("searchQuery")
	if searchQuery == "" {
		handleResponse(c, nil, common.ErrRequiredField)
		return nil
	}
	result, err := h.viewService.SearchMyVideos(c.Context(), userID, searchQuery, basehdl.ParseListPagination(c))
	handleResponse(c, result, err)
	return nil
}

// HandleGetDetail trang chi tiết video theo idName, đồng thời tăng lượt xem.
// Viewer chưa đăng nhập vẫn xem được, các cờ isLiked/isDisliked là false.
func (h *VideoViewHandler) HandleGetDetail(c fiber.Ctx) error {
	idName := c.Params("idName")
	if idName == "" {
		handleResponse(c, nil, common.ErrRequiredField)
		return nil
	}
	viewerID := basehdl.GetUserIDFromLocals(c)
	detail, err := h.viewService.GetVideoDetail(c.Context(), idName, viewerID)
	if err != nil {
		handleResponse(c, nil, err)
		return nil
	}
	if err := h.videoService.IncrementView(c.Context(), detail.ID); err == nil {
		detail.View++
	}
	handleResponse(c, detail, nil)
	return nil
}
