// Package playlisthdl xử lý các request liên quan đến danh sách phát.
package playlisthdl

import (
	"fmt"

	basehdl "meta_tube/internal/api/base/handler"
	playlistdto "meta_tube/internal/api/playlist/dto"
	playlistmodels "meta_tube/internal/api/playlist/models"
	playlistsvc "meta_tube/internal/api/playlist/service"
	"meta_tube/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaylistHandler xử lý các yêu cầu liên quan đến danh sách phát
type PlaylistHandler struct {
	*basehdl.BaseHandler[playlistmodels.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput]
	playlistService *playlistsvc.PlaylistService
	viewService     *playlistsvc.PlaylistViewService
}

// NewPlaylistHandler khởi tạo PlaylistHandler mới
func NewPlaylistHandler() (*PlaylistHandler, error) {
	service, err := playlistsvc.NewPlaylistService()
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist service: %v", err)
	}
	viewService, err := playlistsvc.NewPlaylistViewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist view service: %v", err)
	}
	hdl := &PlaylistHandler{playlistService: service, viewService: viewService}
	hdl.BaseHandler = basehdl.NewBaseHandler[playlistmodels.Playlist, playlistdto.PlaylistCreateInput, playlistdto.PlaylistUpdateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// parseObjectIDParam đọc và kiểm tra một param dạng ObjectID trên URL
func parseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err)
	}
	return id, nil
}

// HandleCreate tạo danh sách phát mới cho người dùng đang đăng nhập
func (h *PlaylistHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		var input playlistdto.PlaylistCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlist, err := h.playlistService.CreatePlaylist(c.Context(), userID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, playlist, nil)
		return nil
	})
}

// HandleUpdate cập nhật danh sách phát thuộc sở hữu của người dùng đang đăng nhập
func (h *PlaylistHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		playlistID, err := parseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input playlistdto.PlaylistUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		playlist, err := h.playlistService.UpdatePlaylist(c.Context(), userID, playlistID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, playlist, nil)
		return nil
	})
}

// HandleDelete xóa danh sách phát thuộc sở hữu của người dùng đang đăng nhập
func (h *PlaylistHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		playlistID, err := parseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.playlistService.DeletePlaylist(c.Context(), userID, playlistID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleAddVideo thêm video vào danh sách phát của người dùng đang đăng nhập
func (h *PlaylistHandler) HandleAddVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		playlistID, err := parseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		var input playlistdto.PlaylistVideoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := primitive.ObjectIDFromHex(input.VideoID)
		if err != nil {
			h.HandleResponse(c, nil, common.ErrInvalidFormat)
			return nil
		}
		member, err := h.playlistService.AddVideo(c.Context(), userID, playlistID, videoID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, member, nil)
		return nil
	})
}

// HandleRemoveVideo gỡ video khỏi danh sách phát của người dùng đang đăng nhập
func (h *PlaylistHandler) HandleRemoveVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		playlistID, err := parseObjectIDParam(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		videoID, err := parseObjectIDParam(c, "videoId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err = h.playlistService.RemoveVideo(c.Context(), userID, playlistID, videoID)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleListByChannel trả về listing danh sách phát công khai của một kênh.
// Chủ kênh tự xem sẽ thấy cả danh sách onlyme.
func (h *PlaylistHandler) HandleListByChannel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		channelID, err := parseObjectIDParam(c, "channelId")
		if err != nil {
			basehdl.HandleViewResponse(c, nil, err)
			return nil
		}
		viewerID := basehdl.GetUserIDFromLocals(c)
		includePrivate := viewerID == channelID
		pg := basehdl.ParseListPagination(c)
		result, err := h.viewService.ListByAccount(c.Context(), channelID, includePrivate, pg)
		basehdl.HandleViewResponse(c, result, err)
		return nil
	})
}

// HandleListMine trả về toàn bộ danh sách phát của người dùng đang đăng nhập
func (h *PlaylistHandler) HandleListMine(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		pg := basehdl.ParseListPagination(c)
		result, err := h.viewService.ListByAccount(c.Context(), userID, true, pg)
		basehdl.HandleViewResponse(c, result, err)
		return nil
	})
}

// HandleListVideos trả về trang video của một danh sách phát theo thứ tự thêm vào
func (h *PlaylistHandler) HandleListVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		playlistID, err := parseObjectIDParam(c, "id")
		if err != nil {
			basehdl.HandleViewResponse(c, nil, err)
			return nil
		}
		pg := basehdl.ParseListPagination(c)
		result, err := h.viewService.ListVideos(c.Context(), playlistID, pg)
		basehdl.HandleViewResponse(c, result, err)
		return nil
	})
}
