// Package socialsvc - service các cạnh xã hội: đăng ký kênh, video đã lưu,
// lịch sử xem.
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

// SubscriptionService là cấu trúc chứa các phương thức liên quan đến đăng ký kênh
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[socialmodels.Subscription]
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	subscriptionCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}

	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[socialmodels.Subscription](subscriptionCollection),
	}, nil
}

// Toggle đảo trạng thái đăng ký của fromID với kênh toID: chưa đăng ký thì
// đăng ký, đã đăng ký thì hủy. Trả về trạng thái sau khi đảo.
func (s *SubscriptionService) Toggle(ctx context.Context, fromID, toID primitive.ObjectID) (bool, error) {
	if fromID == toID {
		// Không tự đăng ký kênh của chính mình
		return false, common.ErrInvalidInput
	}

	filter := bson.M{"fromAccountId": fromID, "toAccountId": toID}
	exists, err := s.DocumentExists(ctx, filter)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.DeleteOne(ctx, filter); err != nil {
			return false, err
		}
		return false, nil
	}

	_, err = s.InsertOne(ctx, socialmodels.Subscription{
		FromAccountID: fromID,
		ToAccountID:   toID,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsSubscribed kiểm tra fromID đã đăng ký kênh toID chưa.
func (s *SubscriptionService) IsSubscribed(ctx context.Context, fromID, toID primitive.ObjectID) (bool, error) {
	return s.DocumentExists(ctx, bson.M{"fromAccountId": fromID, "toAccountId": toID})
}

// buildSubscribedChannelsBasePipeline dựng pipeline gốc danh sách kênh đã
// đăng ký của một tài khoản: mới đăng ký trước.
func buildSubscribedChannelsBasePipeline(accountID primitive.ObjectID) []bson.M {
	return []bson.M{
		basesvc.MatchStage(bson.M{"fromAccountId": accountID}),
		basesvc.SortStage("createdAt", -1),
	}
}

// subscribedChannelStages dựng các stage trình bày một kênh đã đăng ký:
// join kênh (bắt buộc), avatar thành URL, tổng số người đăng ký kênh đó,
// strip field nhạy cảm.
func subscribedChannelStages(host, publicPath string) []bson.M {
	cols := global.MongoDB_ColNames

	stages := []bson.M{
		basesvc.LookupStage(cols.Users, "toAccountId", "_id", "channel"),
		basesvc.UnwindStage("channel"),
		basesvc.LookupStage(cols.Subscriptions, "toAccountId", "toAccountId", "_subs"),
		{"$replaceRoot": bson.M{
			"newRoot": bson.M{"$mergeObjects": bson.A{
				"$channel",
				bson.M{
					"subscribeCount": bson.M{"$size": "$_subs"},
					"subscribedAt":   "$createdAt",
				},
			}},
		}},
	}
	stages = append(stages, basesvc.ImageJoinStages(cols.Images, "avatarId", "avatar", host, publicPath)...)
	stages = append(stages, bson.M{"$project": basesvc.StripSensitiveUserFields("")})
	return stages
}

// ListSubscribedChannels trả về trang kênh mà accountID đang đăng ký.
func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, accountID primitive.ObjectID, pg basesvc.Pagination) (*basemodels.PaginateResult[socialmodels.SubscribedChannelView], error) {
	cfg := global.MongoDB_ServerConfig
	return basesvc.AggregatePaginated[socialmodels.SubscribedChannelView](
		ctx,
		s.Collection(),
		buildSubscribedChannelsBasePipeline(accountID),
		subscribedChannelStages(cfg.Host, cfg.PublicImagesPath),
		pg,
	)
}
