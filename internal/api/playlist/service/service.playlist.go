// Package playlistsvc - service danh sách phát.
package playlistsvc

import (
	"context"
	"fmt"

	basesvc "meta_tube/internal/api/base/service"
	playlistdto "meta_tube/internal/api/playlist/dto"
	playlistmodels "meta_tube/internal/api/playlist/models"
	videomodels "meta_tube/internal/api/video/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlaylistService là cấu trúc chứa các phương thức liên quan đến danh sách phát
type PlaylistService struct {
	*basesvc.BaseServiceMongoImpl[playlistmodels.Playlist]
	members *basesvc.BaseServiceMongoImpl[playlistmodels.PlaylistVideo]
}

// NewPlaylistService tạo mới PlaylistService
func NewPlaylistService() (*PlaylistService, error) {
	playlistCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	memberCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PlaylistVideos)
	if !exist {
		return nil, fmt.Errorf("failed to get playlist_videos collection: %v", common.ErrNotFound)
	}

	return &PlaylistService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[playlistmodels.Playlist](playlistCollection),
		members:              basesvc.NewBaseServiceMongo[playlistmodels.PlaylistVideo](memberCollection),
	}, nil
}

// CreatePlaylist tạo danh sách phát mới cho tài khoản accountID.
func (s *PlaylistService) CreatePlaylist(ctx context.Context, accountID primitive.ObjectID, input *playlistdto.PlaylistCreateInput) (*playlistmodels.Playlist, error) {
	audience := videomodels.Audience(input.Audience)
	if input.Audience != "" && !audience.Valid() {
		return nil, common.ErrInvalidInput
	}

	playlist := playlistmodels.Playlist{
		AccountID: accountID,
		Name:      input.Name,
		Audience:  audience,
	}
	created, err := s.InsertOne(ctx, playlist)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePlaylist cập nhật danh sách phát thuộc sở hữu của accountID.
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, accountID, playlistID primitive.ObjectID, input *playlistdto.PlaylistUpdateInput) (*playlistmodels.Playlist, error) {
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Audience != "" {
		audience := videomodels.Audience(input.Audience)
		if !audience.Valid() {
			return nil, common.ErrInvalidInput
		}
		set["audience"] = audience
	}
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}

	filter := bson.M{"_id": playlistID, "accountId": accountID}
	updated, err := s.UpdateOne(ctx, filter, &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePlaylist xóa danh sách phát thuộc sở hữu của accountID
// cùng toàn bộ cạnh nối video của nó.
func (s *PlaylistService) DeletePlaylist(ctx context.Context, accountID, playlistID primitive.ObjectID) error {
	if err := s.DeleteOne(ctx, bson.M{"_id": playlistID, "accountId": accountID}); err != nil {
		return err
	}
	_, err := s.members.DeleteMany(ctx, bson.M{"playlistId": playlistID})
	return err
}

// requireOwnership xác nhận danh sách phát thuộc về accountID.
func (s *PlaylistService) requireOwnership(ctx context.Context, accountID, playlistID primitive.ObjectID) error {
	_, err := s.FindOne(ctx, bson.M{"_id": playlistID, "accountId": accountID}, nil)
	return err
}

// AddVideo thêm video vào danh sách phát thuộc sở hữu của accountID.
// Upsert theo cặp (playlistId, videoId) nên thêm lại cùng video không tạo
// cạnh trùng lặp và không đổi vị trí của video trong danh sách.
func (s *PlaylistService) AddVideo(ctx context.Context, accountID, playlistID, videoID primitive.ObjectID) (*playlistmodels.PlaylistVideo, error) {
	if err := s.requireOwnership(ctx, accountID, playlistID); err != nil {
		return nil, err
	}

	filter := bson.M{"playlistId": playlistID, "videoId": videoID}
	member, err := s.members.Upsert(ctx, filter, map[string]interface{}{
		"playlistId": playlistID,
		"videoId":    videoID,
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveVideo gỡ video khỏi danh sách phát thuộc sở hữu của accountID.
func (s *PlaylistService) RemoveVideo(ctx context.Context, accountID, playlistID, videoID primitive.ObjectID) error {
	if err := s.requireOwnership(ctx, accountID, playlistID); err != nil {
		return err
	}
	return s.members.DeleteOne(ctx, bson.M{"playlistId": playlistID, "videoId": videoID})
}
