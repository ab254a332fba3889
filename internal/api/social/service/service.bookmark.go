package socialsvc

import (
	"context"
	"fmt"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	socialmodels "meta_tube/internal/api/social/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookmarkService là cấu trúc chứa các phương thức liên quan đến video đã lưu
type BookmarkService struct {
	*basesvc.BaseServiceMongoImpl[socialmodels.Bookmark]
}

// NewBookmarkService tạo mới BookmarkService
func NewBookmarkService() (*BookmarkService, error) {
	bookmarkCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Bookmarks)
	if !exist {
		return nil, fmt.Errorf("failed to get bookmarks collection: %v", common.ErrNotFound)
	}

	return &BookmarkService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[socialmodels.Bookmark](bookmarkCollection),
	}, nil
}

// Add lưu một video cho accountID. Upsert theo cặp (accountId, videoId) nên
// lưu lại video đã lưu không tạo bản ghi trùng lặp.
func (s *BookmarkService) Add(ctx context.Context, accountID, videoID primitive.ObjectID) (*socialmodels.Bookmark, error) {
	filter := bson.M{"accountId": accountID, "videoId": videoID}
	bookmark, err := s.Upsert(ctx, filter, map[string]interface{}{
		"accountId": accountID,
		"videoId":   videoID,
	})
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

// Remove gỡ một video đã lưu của accountID.
func (s *BookmarkService) Remove(ctx context.Context, accountID, videoID primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"accountId": accountID, "videoId": videoID})
}

// videoEdgeStages dựng các stage trình bày chung cho các listing dựa trên
// cạnh trỏ vào video (video đã lưu, lịch sử xem): gộp video vào gốc, giữ lại
// timestamp của cạnh dưới tên edgeField, rồi denormalize tác giả và thumbnail.
// Cạnh của video đã xóa bị loại khỏi kết quả (unwind bắt buộc ở pipeline gốc).
func videoEdgeStages(edgeField, edgeTimeRef, host, publicPath string) []bson.M {
	cols := global.MongoDB_ColNames

	stages := []bson.M{
		{"$replaceRoot": bson.M{
			"newRoot": bson.M{"$mergeObjects": bson.A{"$video", bson.M{edgeField: edgeTimeRef}}},
		}},
	}
	stages = append(stages, basesvc.AuthorLookupStages(cols.Users, cols.Images, "accountId", "author", host, publicPath)...)
	stages = append(stages, basesvc.ImageJoinStages(cols.Images, "thumbnailId", "thumbnail", host, publicPath)...)
	stages = append(stages, bson.M{"$project": basesvc.StripSensitiveUserFields("author")})
	return stages
}

// buildBookmarkBasePipeline dựng pipeline gốc video đã lưu: lọc theo tài
// khoản, join video bắt buộc, mới lưu trước.
func buildBookmarkBasePipeline(accountID primitive.ObjectID) []bson.M {
	cols := global.MongoDB_ColNames
	return []bson.M{
		basesvc.MatchStage(bson.M{"accountId": accountID}),
		basesvc.LookupStage(cols.Videos, "videoId", "_id", "video"),
		basesvc.UnwindStage("video"),
		basesvc.SortStage("createdAt", -1),
	}
}

// List trả về trang video đã lưu của accountID, mới lưu trước.
func (s *BookmarkService) List(ctx context.Context, accountID primitive.ObjectID, pg basesvc.Pagination) (*basemodels.PaginateResult[socialmodels.BookmarkView], error) {
	cfg := global.MongoDB_ServerConfig
	return basesvc.AggregatePaginated[socialmodels.BookmarkView](
		ctx,
		s.Collection(),
		buildBookmarkBasePipeline(accountID),
		videoEdgeStages("addedAt", "$createdAt", cfg.Host, cfg.PublicImagesPath),
		pg,
	)
}
