// Package postsvc - service bài viết cộng đồng.
package postsvc

import (
	"context"
	"fmt"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	postdto "meta_tube/internal/api/post/dto"
	postmodels "meta_tube/internal/api/post/models"
	videomodels "meta_tube/internal/api/video/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostService là cấu trúc chứa các phương thức liên quan đến bài viết
type PostService struct {
	*basesvc.BaseServiceMongoImpl[postmodels.Post]
}

// NewPostService tạo mới PostService
func NewPostService() (*PostService, error) {
	postCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Posts)
	if !exist {
		return nil, fmt.Errorf("failed to get posts collection: %v", common.ErrNotFound)
	}

	return &PostService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[postmodels.Post](postCollection),
	}, nil
}

// parseImageIDs chuyển danh sách hex ObjectID ảnh từ DTO sang ObjectID
func parseImageIDs(images []string) ([]primitive.ObjectID, error) {
	if len(images) == 0 {
		return nil, nil
	}
	out := make([]primitive.ObjectID, 0, len(images))
	for _, hex := range images {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		out = append(out, id)
	}
	return out, nil
}

// CreatePost tạo bài viết mới cho tài khoản accountID.
func (s *PostService) CreatePost(ctx context.Context, accountID primitive.ObjectID, input *postdto.PostCreateInput) (*postmodels.Post, error) {
	audience := videomodels.Audience(input.Audience)
	if input.Audience != "" && !audience.Valid() {
		return nil, common.ErrInvalidInput
	}
	imageIDs, err := parseImageIDs(input.Images)
	if err != nil {
		return nil, err
	}

	post := postmodels.Post{
		AccountID: accountID,
		Content:   input.Content,
		Images:    imageIDs,
		Audience:  audience,
	}
	created, err := s.InsertOne(ctx, post)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdatePost cập nhật bài viết thuộc sở hữu của accountID.
func (s *PostService) UpdatePost(ctx context.Context, accountID, postID primitive.ObjectID, input *postdto.PostUpdateInput) (*postmodels.Post, error) {
	set := map[string]interface{}{}
	if input.Content != "" {
		set["content"] = input.Content
	}
	if input.Audience != "" {
		audience := videomodels.Audience(input.Audience)
		if !audience.Valid() {
			return nil, common.ErrInvalidInput
		}
		set["audience"] = audience
	}
	if len(input.Images) > 0 {
		imageIDs, err := parseImageIDs(input.Images)
		if err != nil {
			return nil, err
		}
		set["images"] = imageIDs
	}
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}

	filter := bson.M{"_id": postID, "accountId": accountID}
	updated, err := s.UpdateOne(ctx, filter, &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePost xóa bài viết thuộc sở hữu của accountID.
func (s *PostService) DeletePost(ctx context.Context, accountID, postID primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": postID, "accountId": accountID})
}

// buildPostBasePipeline dựng pipeline gốc listing bài viết: lọc + mới nhất trước.
func buildPostBasePipeline(filter bson.M) []bson.M {
	return []bson.M{
		basesvc.MatchStage(filter),
		basesvc.SortStage("createdAt", -1),
	}
}

// postViewStages dựng các stage trình bày một bài viết: join tác giả,
// map ảnh đính kèm thành URL, đếm reaction theo viewer, strip field nhạy cảm.
func postViewStages(viewerID primitive.ObjectID, host, publicPath string) []bson.M {
	cols := global.MongoDB_ColNames

	stages := basesvc.AuthorLookupStages(cols.Users, cols.Images, "accountId", "author", host, publicPath)
	stages = append(stages,
		basesvc.LookupStage(cols.Images, "images", "_id", "_imgs"),
		bson.M{"$addFields": bson.M{
			"imageUrls": bson.M{
				"$map": bson.M{
					"input": "$_imgs",
					"as":    "img",
					"in":    bson.M{"$concat": bson.A{host, publicPath, "/", "$$img.name"}},
				},
			},
		}},
	)
	stages = append(stages, basesvc.ReactionCountStages(cols.Reactions, "_id", viewerID)...)

	strip := basesvc.StripSensitiveUserFields("author")
	strip["_imgs"] = 0
	stages = append(stages, bson.M{"$project": strip})
	return stages
}

// ListPublicPosts trả về listing bài viết công khai của một kênh.
func (s *PostService) ListPublicPosts(ctx context.Context, channelID primitive.ObjectID, viewerID primitive.ObjectID, pg basesvc.Pagination) (*basemodels.PaginateResult[postmodels.PostView], error) {
	cfg := global.MongoDB_ServerConfig
	filter := bson.M{"accountId": channelID, "audience": videomodels.AudienceEveryone}
	return basesvc.AggregatePaginated[postmodels.PostView](
		ctx,
		s.Collection(),
		buildPostBasePipeline(filter),
		postViewStages(viewerID, cfg.Host, cfg.PublicImagesPath),
		pg,
	)
}

// ListMyPosts trả về toàn bộ bài viết của chính chủ kênh, kể cả onlyme.
func (s *PostService) ListMyPosts(ctx context.Context, accountID primitive.ObjectID, pg basesvc.Pagination) (*basemodels.PaginateResult[postmodels.PostView], error) {
	cfg := global.MongoDB_ServerConfig
	return basesvc.AggregatePaginated[postmodels.PostView](
		ctx,
		s.Collection(),
		buildPostBasePipeline(bson.M{"accountId": accountID}),
		postViewStages(accountID, cfg.Host, cfg.PublicImagesPath),
		pg,
	)
}
