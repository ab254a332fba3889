package videosvc

import (
	"context"
	"fmt"
	"regexp"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	videomodels "meta_tube/internal/api/video/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// VideoViewService dựng các read model video: listing công khai, listing theo
// kênh/danh mục, tìm kiếm và trang chi tiết. Mọi listing dùng chung một cặp
// builder (base pipeline + presentation stages) nên filter của nhánh dữ liệu
// và nhánh đếm luôn khớp nhau.
type VideoViewService struct {
	videos *mongo.Collection
}

// NewVideoViewService tạo mới VideoViewService
func NewVideoViewService() (*VideoViewService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &VideoViewService{videos: videoCollection}, nil
}

// VideoSort là tham số sắp xếp listing lấy từ query.
// Rỗng dùng mặc định: mới nhất trước (createdAt giảm dần).
type VideoSort struct {
	SortBy  string
	OrderBy string // "asc" hoặc "desc"
}

// publicVideoFilter là điều kiện chung cho mọi listing công khai:
// chỉ video audience everyone và chưa bị khóa.
func publicVideoFilter() bson.M {
	return bson.M{
		"audience": videomodels.AudienceEveryone,
		"status":   videomodels.VideoStatusActive,
	}
}

// titleSearchFilter tạo điều kiện tìm kiếm substring không phân biệt hoa
// thường trên title. Query được quote để ký tự regex trong input không đổi
// nghĩa phép so khớp.
func titleSearchFilter(searchQuery string) bson.M {
	return bson.M{"title": primitive.Regex{Pattern: regexp.QuoteMeta(searchQuery), Options: "i"}}
}

// buildVideoBasePipeline dựng pipeline gốc cho một listing video: $match theo
// filter rồi $sort. Sort nằm trong base (trước $skip/$limit của nhánh dữ liệu)
// để phân trang cắt đúng thứ tự người dùng yêu cầu.
func buildVideoBasePipeline(filter bson.M, sort VideoSort) []bson.M {
	sortField := "createdAt"
	order := -1
	if sort.SortBy != "" {
		sortField = sort.SortBy
	}
	if sort.OrderBy == "asc" {
		order = 1
	}
	return []bson.M{
		basesvc.MatchStage(filter),
		basesvc.SortStage(sortField, order),
	}
}

// videoSummaryStages dựng các stage trình bày cho một dòng listing:
// join tác giả (bắt buộc), join thumbnail (tùy chọn), strip field nhạy cảm.
// Chạy sau $skip/$limit nên chỉ tốn chi phí join cho đúng một trang.
func videoSummaryStages(host, publicPath string) []bson.M {
	cols := global.MongoDB_ColNames
	stages := basesvc.AuthorLookupStages(cols.Users, cols.Images, "accountId", "author", host, publicPath)
	stages = append(stages, basesvc.ImageJoinStages(cols.Images, "thumbnailId", "thumbnail", host, publicPath)...)
	stages = append(stages, bson.M{"$project": basesvc.StripSensitiveUserFields("author")})
	return stages
}

// listVideos chạy một listing video hoàn chỉnh qua AggregatePaginated.
func (s *VideoViewService) listVideos(ctx context.Context, filter bson.M, sort VideoSort, pg basesvc.Pagination) (*basemodels.PaginateResult[videomodels.VideoSummaryView], error) {
	cfg := global.MongoDB_ServerConfig
	return basesvc.AggregatePaginated[videomodels.VideoSummaryView](
		ctx,
		s.videos,
		buildVideoBasePipeline(filter, sort),
		videoSummaryStages(cfg.Host, cfg.PublicImagesPath),
		pg,
	)
}

// ListPublicVideos trả về listing video công khai.
func (s *VideoViewService) ListPublicVideos(ctx context.Context, sort VideoSort, pg basesvc.Pagination) (*basemodels.PaginateResult[videomodels.VideoSummaryView], error) {
	return s.listVideos(ctx, publicVideoFilter(), sort, pg)
}

// ListVideosByCategory trả về listing video công khai thuộc một danh mục.
func (s *VideoViewService) ListVideosByCategory(ctx context.Context, categoryID primitive.ObjectID, sort VideoSort, pg basesvc.Pagination) (*basemodels.PaginateResult[videomodels.VideoSummaryView], error) {
	filter := publicVideoFilter()
	filter["categoryId"] = categoryID
	return s.listVideos(ctx, filter, sort, pg)
}

// ListMyVideos trả về toàn bộ video của chính chủ kênh, kể cả onlyme.
func (s *VideoViewService) ListMyVideos(ctx context.Context, accountID primitive.ObjectID, sort VideoSort, pg basesvc.Pagination) (*basemodels.PaginateResult[videomodels.VideoSummaryView], error) {
	return s.listVideos(ctx, bson.M{"accountId": accountID}, sort, pg)
}

// ListChannelVideos trả về video công khai của một kênh bất kỳ.
func (s *VideoViewService) ListChannelVideos(ctx context.Context, channelID primitive.ObjectID, sort VideoSort, pg basesvc.Pagination) (*basemodels.PaginateResult[videomodels.VideoSummaryView], error) {
	filter := publicVideoFilter()
	filter["accountId"] = channelID
	return s.listVideos(ctx, filter, sort, pg)
}

// SearchPublicVideos tìm kiếm trong video công khai theo title.
func (s *VideoViewService) SearchPublicVideos(ctx context.Context, searchQuery string, pg basesvc.Pagination) (*basemodels.PaginateResult[videomodels.VideoSummaryView], error) {
	filter := publicVideoFilter()
	for k, v := range titleSearchFilter(searchQuery) {
		filter[k] = v
	}
	return s.listVideos(ctx, filter, VideoSort{}, pg)
}

// SearchMyVideos tìm kiếm trong kênh của chính người gọi, không giới hạn audience.
func (s *VideoViewService) SearchMyVideos(ctx context.Context, accountID primitive.ObjectID, searchQuery string, pg basesvc.Pagination) (*basemodels.PaginateResult[videomodels.VideoSummaryView], error) {
	filter := bson.M{"accountId": accountID}
	for k, v := range titleSearchFilter(searchQuery) {
		filter[k] = v
	}
	return s.listVideos(ctx, filter, VideoSort{}, pg)
}

// buildVideoDetailPipeline dựng pipeline trang chi tiết video: summary cộng
// join danh mục tùy chọn, đếm reaction theo viewer và đếm bình luận.
func buildVideoDetailPipeline(idName string, viewerID primitive.ObjectID, host, publicPath string) []bson.M {
	cols := global.MongoDB_ColNames

	pipeline := []bson.M{basesvc.MatchStage(bson.M{"idName": idName})}
	pipeline = append(pipeline, basesvc.AuthorLookupStages(cols.Users, cols.Images, "accountId", "author", host, publicPath)...)
	pipeline = append(pipeline, basesvc.ImageJoinStages(cols.Images, "thumbnailId", "thumbnail", host, publicPath)...)
	pipeline = append(pipeline,
		basesvc.LookupStage(cols.Categories, "categoryId", "_id", "_category"),
		bson.M{"$addFields": bson.M{
			"category": bson.M{"$ifNull": bson.A{bson.M{"$arrayElemAt": bson.A{"$_category.name", 0}}, ""}},
		}},
	)
	pipeline = append(pipeline, basesvc.ReactionCountStages(cols.Reactions, "_id", viewerID)...)
	pipeline = append(pipeline,
		basesvc.LookupStage(cols.Comments, "_id", "contentId", "_comments"),
		bson.M{"$addFields": bson.M{"commentCount": bson.M{"$size": "$_comments"}}},
	)

	strip := basesvc.StripSensitiveUserFields("author")
	strip["_category"] = 0
	strip["_comments"] = 0
	pipeline = append(pipeline, bson.M{"$project": strip})
	return pipeline
}

// GetVideoDetail trả về trang chi tiết video theo idName với các field
// viewer-relative tính cho viewerID (zero = khách chưa đăng nhập).
func (s *VideoViewService) GetVideoDetail(ctx context.Context, idName string, viewerID primitive.ObjectID) (*videomodels.VideoDetailView, error) {
	cfg := global.MongoDB_ServerConfig
	cursor, err := s.videos.Aggregate(ctx, buildVideoDetailPipeline(idName, viewerID, cfg.Host, cfg.PublicImagesPath))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []videomodels.VideoDetailView
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}
