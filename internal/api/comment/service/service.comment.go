// Package commentsvc - service bình luận và reaction.
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

// CommentService là cấu trúc chứa các phương thức liên quan đến bình luận
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[commentmodels.Comment]
}

// NewCommentService tạo mới CommentService
func NewCommentService() (*CommentService, error) {
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}

	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[commentmodels.Comment](commentCollection),
	}, nil
}

// CreateComment tạo bình luận mới. ParentID rỗng là bình luận gốc,
// khác rỗng là trả lời của bình luận gốc đó.
func (s *CommentService) CreateComment(ctx context.Context, accountID primitive.ObjectID, input *commentdto.CommentCreateInput) (*commentmodels.Comment, error) {
	contentType := commentmodels.ContentType(input.ContentType)
	if !contentType.Valid() || contentType == commentmodels.ContentTypeComment {
		return nil, common.ErrInvalidInput
	}
	contentID, err := primitive.ObjectIDFromHex(input.ContentID)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}

	comment := commentmodels.Comment{
		ContentID:   contentID,
		ContentType: contentType,
		AccountID:   accountID,
		Content:     input.Content,
	}

	if input.ParentID != "" {
		parentID, err := primitive.ObjectIDFromHex(input.ParentID)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		// Trả lời phải trỏ vào một bình luận gốc đang tồn tại
		parent, err := s.FindOne(ctx, bson.M{"_id": parentID}, nil)
		if err != nil {
			return nil, common.ErrNotFound
		}
		if parent.ParentID != nil {
			// Không cho trả lời lồng nhau quá một cấp
			return nil, common.ErrInvalidInput
		}
		comment.ParentID = &parentID
	}

	if input.ReplyAccountID != "" {
		replyAccountID, err := primitive.ObjectIDFromHex(input.ReplyAccountID)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		comment.ReplyAccountID = &replyAccountID
	}

	created, err := s.InsertOne(ctx, comment)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateComment cập nhật nội dung bình luận thuộc sở hữu của accountID.
func (s *CommentService) UpdateComment(ctx context.Context, accountID, commentID primitive.ObjectID, input *commentdto.CommentUpdateInput) (*commentmodels.Comment, error) {
	filter := bson.M{"_id": commentID, "accountId": accountID}
	updated, err := s.UpdateOne(ctx, filter, &basesvc.UpdateData{
		Set: map[string]interface{}{"content": input.Content},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteComment xóa bình luận thuộc sở hữu của accountID.
// Xóa bình luận gốc kéo theo toàn bộ trả lời trực tiếp của nó;
// xóa một trả lời chỉ xóa chính nó.
func (s *CommentService) DeleteComment(ctx context.Context, accountID, commentID primitive.ObjectID) error {
	comment, err := s.FindOne(ctx, ownedCommentFilter(accountID, commentID), nil)
	if err != nil {
		return err
	}

	if comment.ParentID == nil {
		if _, err := s.DeleteMany(ctx, repliesOfFilter(commentID)); err != nil {
			return err
		}
	}
	return s.DeleteOne(ctx, bson.M{"_id": commentID})
}

// ownedCommentFilter khớp bình luận thuộc sở hữu của accountID.
func ownedCommentFilter(accountID, commentID primitive.ObjectID) bson.M {
	return bson.M{"_id": commentID, "accountId": accountID}
}

// repliesOfFilter khớp toàn bộ trả lời trực tiếp của một bình luận gốc.
func repliesOfFilter(commentID primitive.ObjectID) bson.M {
	return bson.M{"parentId": commentID}
}
