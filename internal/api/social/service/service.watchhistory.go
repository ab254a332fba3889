package socialsvc

import (
	"context"
	"fmt"
	"regexp"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	socialmodels "meta_tube/internal/api/social/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchHistoryService là cấu trúc chứa các phương thức liên quan đến lịch sử xem
type WatchHistoryService struct {
	*basesvc.BaseServiceMongoImpl[socialmodels.WatchHistory]
}

// NewWatchHistoryService tạo mới WatchHistoryService
func NewWatchHistoryService() (*WatchHistoryService, error) {
	historyCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.WatchHistories)
	if !exist {
		return nil, fmt.Errorf("failed to get watch_histories collection: %v", common.ErrNotFound)
	}

	return &WatchHistoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[socialmodels.WatchHistory](historyCollection),
	}, nil
}

// Record ghi nhận accountID vừa xem videoID. Upsert theo cặp (accountId,
// videoId): đã có bản ghi thì chỉ đẩy updatedAt lên, chưa có thì tạo mới.
func (s *WatchHistoryService) Record(ctx context.Context, accountID, videoID primitive.ObjectID) (*socialmodels.WatchHistory, error) {
	filter := bson.M{"accountId": accountID, "videoId": videoID}
	entry, err := s.Upsert(ctx, filter, map[string]interface{}{
		"accountId": accountID,
		"videoId":   videoID,
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Remove gỡ một video khỏi lịch sử xem của accountID.
func (s *WatchHistoryService) Remove(ctx context.Context, accountID, videoID primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"accountId": accountID, "videoId": videoID})
}

// Clear xóa toàn bộ lịch sử xem của accountID.
func (s *WatchHistoryService) Clear(ctx context.Context, accountID primitive.ObjectID) (int64, error) {
	return s.DeleteMany(ctx, bson.M{"accountId": accountID})
}

// buildWatchHistoryBasePipeline dựng pipeline gốc lịch sử xem: lọc theo tài
// khoản, join video bắt buộc, lọc tiêu đề sau join khi có searchQuery, xem
// gần nhất trước. Lọc tiêu đề nằm trong pipeline gốc nên total luôn khớp với
// danh sách đã lọc.
func buildWatchHistoryBasePipeline(accountID primitive.ObjectID, searchQuery string) []bson.M {
	cols := global.MongoDB_ColNames
	pipeline := []bson.M{
		basesvc.MatchStage(bson.M{"accountId": accountID}),
		basesvc.LookupStage(cols.Videos, "videoId", "_id", "video"),
		basesvc.UnwindStage("video"),
	}
	if searchQuery != "" {
		pipeline = append(pipeline, basesvc.MatchStage(bson.M{
			"video.title": primitive.Regex{Pattern: regexp.QuoteMeta(searchQuery), Options: "i"},
		}))
	}
	pipeline = append(pipeline, basesvc.SortStage("updatedAt", -1))
	return pipeline
}

// List trả về trang lịch sử xem của accountID, xem gần nhất trước.
// searchQuery khác rỗng lọc theo tiêu đề video (không phân biệt hoa thường).
func (s *WatchHistoryService) List(ctx context.Context, accountID primitive.ObjectID, searchQuery string, pg basesvc.Pagination) (*basemodels.PaginateResult[socialmodels.WatchHistoryView], error) {
	cfg := global.MongoDB_ServerConfig
	return basesvc.AggregatePaginated[socialmodels.WatchHistoryView](
		ctx,
		s.Collection(),
		buildWatchHistoryBasePipeline(accountID, searchQuery),
		videoEdgeStages("viewedAt", "$updatedAt", cfg.Host, cfg.PublicImagesPath),
		pg,
	)
}
