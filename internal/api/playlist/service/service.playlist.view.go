package playlistsvc

import (
	"context"
	"fmt"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	playlistmodels "meta_tube/internal/api/playlist/models"
	videomodels "meta_tube/internal/api/video/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PlaylistViewService dựng view danh sách phát đã denormalize: số video,
// thumbnail và idName của video đầu tiên, và trang video bên trong một
// danh sách phát theo thứ tự thêm vào.
type PlaylistViewService struct {
	playlists *mongo.Collection
	members   *mongo.Collection
}

// NewPlaylistViewService tạo mới PlaylistViewService
func NewPlaylistViewService() (*PlaylistViewService, error) {
	playlistCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %v", common.ErrNotFound)
	}
	memberCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PlaylistVideos)
	if !exist {
		return nil, fmt.Errorf("failed to get playlist_videos collection: %v", common.ErrNotFound)
	}
	return &PlaylistViewService{playlists: playlistCollection, members: memberCollection}, nil
}

// buildPlaylistBasePipeline dựng pipeline gốc listing danh sách phát của một
// tài khoản: lọc + mới nhất trước.
func buildPlaylistBasePipeline(filter bson.M) []bson.M {
	return []bson.M{
		basesvc.MatchStage(filter),
		basesvc.SortStage("createdAt", -1),
	}
}

// playlistSummaryStages dựng các stage trình bày một danh sách phát: đếm
// video, tìm video đầu tiên theo thứ tự thêm vào, kéo thumbnail và idName
// của nó. Danh sách trống cho thumbnail và firstVideoIdName là chuỗi rỗng.
func playlistSummaryStages(host, publicPath string) []bson.M {
	cols := global.MongoDB_ColNames

	stages := []bson.M{
		basesvc.LookupStage(cols.PlaylistVideos, "_id", "playlistId", "_members"),
		{"$addFields": bson.M{
			"videoCount": bson.M{"$size": "$_members"},
			"_firstMember": bson.M{
				"$first": bson.M{
					"$sortArray": bson.M{
						"input":  "$_members",
						"sortBy": bson.M{"createdAt": 1},
					},
				},
			},
		}},
		basesvc.LookupStage(cols.Videos, "_firstMember.videoId", "_id", "_firstVideoArr"),
		{"$addFields": bson.M{
			"_firstVideo":      bson.M{"$arrayElemAt": bson.A{"$_firstVideoArr", 0}},
			"firstVideoIdName": bson.M{"$ifNull": bson.A{bson.M{"$arrayElemAt": bson.A{"$_firstVideoArr.idName", 0}}, ""}},
		}},
	}
	stages = append(stages, basesvc.ImageJoinStages(cols.Images, "_firstVideo.thumbnailId", "thumbnail", host, publicPath)...)
	stages = append(stages, bson.M{"$project": bson.M{
		"_members":      0,
		"_firstMember":  0,
		"_firstVideoArr": 0,
		"_firstVideo":   0,
	}})
	return stages
}

// ListByAccount trả về listing danh sách phát của một tài khoản.
// includePrivate = true khi chủ kênh tự xem danh sách của mình.
func (s *PlaylistViewService) ListByAccount(ctx context.Context, accountID primitive.ObjectID, includePrivate bool, pg basesvc.Pagination) (*basemodels.PaginateResult[playlistmodels.PlaylistSummaryView], error) {
	cfg := global.MongoDB_ServerConfig
	filter := bson.M{"accountId": accountID}
	if !includePrivate {
		filter["audience"] = videomodels.AudienceEveryone
	}
	return basesvc.AggregatePaginated[playlistmodels.PlaylistSummaryView](
		ctx,
		s.playlists,
		buildPlaylistBasePipeline(filter),
		playlistSummaryStages(cfg.Host, cfg.PublicImagesPath),
		pg,
	)
}

// buildPlaylistVideosBasePipeline dựng pipeline gốc cho video trong một danh
// sách phát: lọc theo playlistId, thứ tự thêm vào (cũ nhất trước).
func buildPlaylistVideosBasePipeline(playlistID primitive.ObjectID) []bson.M {
	return []bson.M{
		basesvc.MatchStage(bson.M{"playlistId": playlistID}),
		basesvc.SortStage("createdAt", 1),
	}
}

// playlistVideoStages dựng các stage trình bày video trong danh sách phát:
// join video (bắt buộc - video đã xóa bị loại khỏi danh sách), giữ lại thời
// điểm thêm vào, rồi denormalize tác giả và thumbnail như listing video.
func playlistVideoStages(host, publicPath string) []bson.M {
	cols := global.MongoDB_ColNames

	stages := []bson.M{
		basesvc.LookupStage(cols.Videos, "videoId", "_id", "video"),
		basesvc.UnwindStage("video"),
		{"$replaceRoot": bson.M{
			"newRoot": bson.M{"$mergeObjects": bson.A{"$video", bson.M{"addedAt": "$createdAt"}}},
		}},
	}
	stages = append(stages, basesvc.AuthorLookupStages(cols.Users, cols.Images, "accountId", "author", host, publicPath)...)
	stages = append(stages, basesvc.ImageJoinStages(cols.Images, "thumbnailId", "thumbnail", host, publicPath)...)
	stages = append(stages, bson.M{"$project": basesvc.StripSensitiveUserFields("author")})
	return stages
}

// ListVideos trả về trang video của một danh sách phát theo thứ tự thêm vào.
func (s *PlaylistViewService) ListVideos(ctx context.Context, playlistID primitive.ObjectID, pg basesvc.Pagination) (*basemodels.PaginateResult[playlistmodels.PlaylistVideoView], error) {
	cfg := global.MongoDB_ServerConfig
	return basesvc.AggregatePaginated[playlistmodels.PlaylistVideoView](
		ctx,
		s.members,
		buildPlaylistVideosBasePipeline(playlistID),
		playlistVideoStages(cfg.Host, cfg.PublicImagesPath),
		pg,
	)
}
