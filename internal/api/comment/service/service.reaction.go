package commentsvc

import (
	"context"
	"fmt"

	basesvc "meta_tube/internal/api/base/service"
	commentdto "meta_tube/internal/api/comment/dto"
	commentmodels "meta_tube/internal/api/comment/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReactionService là cấu trúc chứa các phương thức liên quan đến reaction
type ReactionService struct {
	*basesvc.BaseServiceMongoImpl[commentmodels.Reaction]
}

// NewReactionService tạo mới ReactionService
func NewReactionService() (*ReactionService, error) {
	reactionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reactions)
	if !exist {
		return nil, fmt.Errorf("failed to get reactions collection: %v", common.ErrNotFound)
	}

	return &ReactionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[commentmodels.Reaction](reactionCollection),
	}, nil
}

// SetReaction đặt reaction của accountID trên một nội dung. Upsert theo cặp
// (accountId, contentId) nên mỗi tài khoản chỉ giữ tối đa một reaction trên
// một nội dung; đặt lại loại khác sẽ ghi đè loại cũ.
func (s *ReactionService) SetReaction(ctx context.Context, accountID primitive.ObjectID, input *commentdto.ReactionSetInput) (*commentmodels.Reaction, error) {
	contentType := commentmodels.ContentType(input.ContentType)
	if !contentType.Valid() {
		return nil, common.ErrInvalidInput
	}
	reactionType := commentmodels.ReactionType(input.Type)
	if !reactionType.Valid() {
		return nil, common.ErrInvalidInput
	}
	contentID, err := primitive.ObjectIDFromHex(input.ContentID)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}

	filter := bson.M{"accountId": accountID, "contentId": contentID}
	reaction, err := s.Upsert(ctx, filter, map[string]interface{}{
		"accountId":   accountID,
		"contentId":   contentID,
		"contentType": contentType,
		"type":        reactionType,
	})
	if err != nil {
		return nil, err
	}
	return &reaction, nil
}

// RemoveReaction gỡ reaction của accountID khỏi một nội dung.
func (s *ReactionService) RemoveReaction(ctx context.Context, accountID, contentID primitive.ObjectID) error {
	return s.DeleteOne(ctx, bson.M{"accountId": accountID, "contentId": contentID})
}
