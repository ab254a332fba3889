// Package videosvc - service video và danh mục.
package videosvc

import (
	"context"
	"fmt"
	"strings"

	basesvc "meta_tube/internal/api/base/service"
	videodto "meta_tube/internal/api/video/dto"
	videomodels "meta_tube/internal/api/video/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoService là cấu trúc chứa các phương thức liên quan đến video
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[videomodels.Video]
}

// NewVideoService tạo mới VideoService
func NewVideoService() (*VideoService, error) {
	videoCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %v", common.ErrNotFound)
	}

	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[videomodels.Video](videoCollection),
	}, nil
}

// makeIdName sinh slug công khai từ tiêu đề: chữ thường, ký tự ngoài [a-z0-9]
// gộp thành '-', kèm hậu tố ngẫu nhiên để bảo đảm unique index idName.
func makeIdName(title string) string {
	var b strings.Builder
	prevDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	slug := strings.Trim(b.String(), "-")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	if slug == "" {
		return suffix
	}
	return slug + "-" + suffix
}

// CreateVideo tạo video mới cho tài khoản accountID, tự sinh idName từ title.
func (s *VideoService) CreateVideo(ctx context.Context, accountID primitive.ObjectID, input *videodto.VideoCreateInput) (*videomodels.Video, error) {
	audience := videomodels.Audience(input.Audience)
	if input.Audience != "" && !audience.Valid() {
		return nil, common.ErrInvalidInput
	}

	video := videomodels.Video{
		Title:       input.Title,
		Description: input.Description,
		IdName:      makeIdName(input.Title),
		AccountID:   accountID,
		Audience:    audience,
	}
	if input.ThumbnailID != "" {
		thumbnailID, err := primitive.ObjectIDFromHex(input.ThumbnailID)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		video.ThumbnailID = &thumbnailID
	}
	if input.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(input.CategoryID)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		video.CategoryID = &categoryID
	}

	created, err := s.InsertOne(ctx, video)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateVideo cập nhật video thuộc sở hữu của accountID.
// Filter kèm accountId nên video của người khác trả về ErrNotFound.
func (s *VideoService) UpdateVideo(ctx context.Context, accountID, videoID primitive.ObjectID, input *videodto.VideoUpdateInput) (*videomodels.Video, error) {
	set := map[string]interface{}{}
	if input.Title != "" {
		set["title"] = input.Title
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.Audience != "" {
		audience := videomodels.Audience(input.Audience)
		if !audience.Valid() {
			return nil, common.ErrInvalidInput
		}
		set["audience"] = audience
	}
	if input.ThumbnailID != "" {
		thumbnailID, err := primitive.ObjectIDFromHex(input.ThumbnailID)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		set["thumbnailId"] = thumbnailID
	}
	if input.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(input.CategoryID)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		set["categoryId"] = categoryID
	}
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}

	filter := bson.M{"_id": videoID, "accountId": accountID}
	updated, err := s.UpdateOne(ctx, filter, &basesvc.UpdateData{Set: set}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteVideo xóa video thuộc sở hữu của accountID.
func (s *VideoService) DeleteVideo(ctx context.Context, accountID, videoID primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"_id": videoID, "accountId": accountID})
}

// IncrementView tăng bộ đếm lượt xem của video thêm 1.
// Dùng $inc trực tiếp vì UpdateData không mô hình hóa toán tử này.
func (s *VideoService) IncrementView(ctx context.Context, videoID primitive.ObjectID) error {
	_, err := s.Collection().UpdateOne(ctx, bson.M{"_id": videoID}, bson.M{"$inc": bson.M{"view": 1}})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục video
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[videomodels.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[videomodels.Category](categoryCollection),
	}, nil
}
