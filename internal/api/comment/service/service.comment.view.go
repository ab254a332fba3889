package commentsvc

import (
	"context"
	"fmt"
	"sync"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	commentmodels "meta_tube/internal/api/comment/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentViewService dựng view bình luận đã denormalize: tác giả, số trả lời,
// đếm reaction và cờ theo viewer.
type CommentViewService struct {
	comments *mongo.Collection
}

// NewCommentViewService tạo mới CommentViewService
func NewCommentViewService() (*CommentViewService, error) {
	commentCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %v", common.ErrNotFound)
	}
	return &CommentViewService{comments: commentCollection}, nil
}

// buildTopLevelBasePipeline dựng pipeline gốc cho bình luận gốc của một nội
// dung: lọc theo contentId + contentType, parentId null, mới nhất trước.
func buildTopLevelBasePipeline(contentID primitive.ObjectID, contentType commentmodels.ContentType) []bson.M {
	return []bson.M{
		basesvc.MatchStage(bson.M{
			"contentId":   contentID,
			"contentType": contentType,
			"parentId":    nil,
		}),
		basesvc.SortStage("createdAt", -1),
	}
}

// topLevelViewStages dựng các stage trình bày bình luận gốc: join tác giả,
// đếm trả lời trực tiếp, đếm reaction theo viewer, strip field nhạy cảm.
func topLevelViewStages(viewerID primitive.ObjectID, host, publicPath string) []bson.M {
	cols := global.MongoDB_ColNames

	stages := basesvc.AuthorLookupStages(cols.Users, cols.Images, "accountId", "author", host, publicPath)
	stages = append(stages,
		basesvc.LookupStage(cols.Comments, "_id", "parentId", "_replies"),
		bson.M{"$addFields": bson.M{"replyCount": bson.M{"$size": "$_replies"}}},
	)
	stages = append(stages, basesvc.ReactionCountStages(cols.Reactions, "_id", viewerID)...)

	strip := basesvc.StripSensitiveUserFields("author")
	strip["_replies"] = 0
	stages = append(stages, bson.M{"$project": strip})
	return stages
}

// ListTopLevel trả về trang bình luận gốc của một nội dung, kèm tổng số
// bình luận của toàn bộ thread (totalRowsWithReplies). Trang bình luận và
// tổng thread là hai truy vấn độc lập nên chạy song song.
func (s *CommentViewService) ListTopLevel(ctx context.Context, contentID primitive.ObjectID, contentType commentmodels.ContentType, viewerID primitive.ObjectID, pg basesvc.Pagination) (*commentmodels.CommentListResult, error) {
	cfg := global.MongoDB_ServerConfig

	var (
		wg       sync.WaitGroup
		page     *basemodels.PaginateResult[commentmodels.CommentView]
		pageErr  error
		total    int64
		totalErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		page, pageErr = basesvc.AggregatePaginated[commentmodels.CommentView](
			ctx,
			s.comments,
			buildTopLevelBasePipeline(contentID, contentType),
			topLevelViewStages(viewerID, cfg.Host, cfg.PublicImagesPath),
			pg,
		)
	}()
	go func() {
		defer wg.Done()
		total, totalErr = s.comments.CountDocuments(ctx, bson.M{
			"contentId":   contentID,
			"contentType": contentType,
		})
	}()
	wg.Wait()

	if pageErr != nil {
		return nil, pageErr
	}
	if totalErr != nil {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, common.MsgDatabaseError, common.StatusInternalServerError, totalErr)
	}

	return &commentmodels.CommentListResult{
		PaginateResult:       page,
		TotalRowsWithReplies: total,
	}, nil
}

// buildRepliesBasePipeline dựng pipeline gốc cho danh sách trả lời của một
// bình luận gốc: lọc theo parentId, cũ nhất trước (theo dòng hội thoại).
func buildRepliesBasePipeline(parentID primitive.ObjectID) []bson.M {
	return []bson.M{
		basesvc.MatchStage(bson.M{"parentId": parentID}),
		basesvc.SortStage("createdAt", 1),
	}
}

// replyViewStages dựng các stage trình bày trả lời: join tác giả, join tùy
// chọn tài khoản được trả lời, đếm reaction theo viewer, strip field nhạy cảm.
func replyViewStages(viewerID primitive.ObjectID, host, publicPath string) []bson.M {
	cols := global.MongoDB_ColNames

	stages := basesvc.AuthorLookupStages(cols.Users, cols.Images, "accountId", "author", host, publicPath)

	// Join tùy chọn: trả lời không nhắm vào ai thì replyAccount vắng mặt
	stages = append(stages,
		basesvc.LookupStage(cols.Users, "replyAccountId", "_id", "replyAccount"),
		basesvc.UnwindPreserveStage("replyAccount"),
	)
	stages = append(stages, basesvc.ImageJoinStages(cols.Images, "replyAccount.avatarId", "replyAccount.avatar", host, publicPath)...)
	stages = append(stages, bson.M{"$addFields": bson.M{
		"replyAccount": bson.M{
			"$cond": bson.A{
				bson.M{"$ifNull": bson.A{"$replyAccount._id", false}},
				"$replyAccount",
				"$$REMOVE",
			},
		},
	}})

	stages = append(stages, basesvc.ReactionCountStages(cols.Reactions, "_id", viewerID)...)

	strip := basesvc.StripSensitiveUserFields("author")
	for k, v := range basesvc.StripSensitiveUserFields("replyAccount") {
		strip[k] = v
	}
	stages = append(stages, bson.M{"$project": strip})
	return stages
}

// ListReplies trả về trang trả lời của một bình luận gốc.
func (s *CommentViewService) ListReplies(ctx context.Context, parentID primitive.ObjectID, viewerID primitive.ObjectID, pg basesvc.Pagination) (*basemodels.PaginateResult[commentmodels.CommentView], error) {
	cfg := global.MongoDB_ServerConfig
	return basesvc.AggregatePaginated[commentmodels.CommentView](
		ctx,
		s.comments,
		buildRepliesBasePipeline(parentID),
		replyViewStages(viewerID, cfg.Host, cfg.PublicImagesPath),
		pg,
	)
}
