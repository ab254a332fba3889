// Package authsvc - service người dùng / kênh (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	authdto "meta_tube/internal/api/auth/dto"
	models "meta_tube/internal/api/auth/models"
	basesvc "meta_tube/internal/api/base/service"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
	"meta_tube/internal/utility"

	"github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng / kênh
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký tài khoản mới. Username và email phải chưa tồn tại;
// channelName rỗng được mặc định bằng username.
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	exists, err := s.DocumentExists(ctx, bson.M{"$or": bson.A{
		bson.M{"username": input.Username},
		bson.M{"email": input.Email},
	}})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeDatabaseQuery, "Username hoặc email đã được sử dụng", common.StatusConflict, nil)
	}

	hashedPassword, err := utility.HashPassword(input.Password)
	if err != nil {
		logrus.WithError(err).Error("Register: Lỗi băm mật khẩu")
		return nil, common.NewError(common.ErrCodeInternalServer, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	channelName := input.ChannelName
	if channelName == "" {
		channelName = input.Username
	}

	user := models.User{
		Username:    input.Username,
		ChannelName: channelName,
		Email:       input.Email,
		Password:    hashedPassword,
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Login xác thực email/mật khẩu và phát hành token JWT mới.
// Token mới nhất được lưu lại trên document user.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, string, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", common.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !utility.ComparePassword(user.Password, input.Password) {
		return nil, "", common.ErrInvalidCredentials
	}
	if user.Status == models.UserStatusBlocked {
		return nil, "", common.NewError(common.ErrCodeAuthCredentials, "Tài khoản đã bị khóa", common.StatusForbidden, nil)
	}

	currentTime := time.Now().Unix()
	rdNumber := rand.Intn(100)
	tokenMap, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		user.ID.Hex(),
		strconv.FormatInt(currentTime, 16),
		strconv.Itoa(rdNumber),
	)
	if err != nil {
		logrus.WithError(err).Error("Login: Lỗi tạo token")
		return nil, "", common.NewError(common.ErrCodeAuthToken, "Không tạo được token", common.StatusInternalServerError, err)
	}
	token := tokenMap["token"]

	updated, err := s.UpdateById(ctx, user.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	})
	if err != nil {
		return nil, "", err
	}

	return &updated, token, nil
}

// UpdateProfile cập nhật thông tin kênh của chính người dùng.
// Chỉ các field có giá trị trong input mới được ghi đè.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangeInfoInput) (*models.User, error) {
	set := map[string]interface{}{}
	if input.ChannelName != "" {
		set["channelName"] = input.ChannelName
	}
	if input.Bio != "" {
		set["bio"] = input.Bio
	}
	if input.AvatarID != "" {
		avatarID, err := primitive.ObjectIDFromHex(input.AvatarID)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		set["avatarId"] = avatarID
	}
	if input.CoverID != "" {
		coverID, err := primitive.ObjectIDFromHex(input.CoverID)
		if err != nil {
			return nil, common.ErrInvalidFormat
		}
		set["coverId"] = coverID
	}
	if len(set) == 0 {
		return nil, common.ErrInvalidInput
	}

	updated, err := s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// buildChannelProfilePipeline dựng pipeline trang kênh công khai: join ảnh
// avatar/cover thành URL, đếm số người đăng ký, strip field nhạy cảm.
func buildChannelProfilePipeline(accountID primitive.ObjectID) []bson.M {
	cfg := global.MongoDB_ServerConfig
	pipeline := []bson.M{
		basesvc.MatchStage(bson.M{"_id": accountID}),
	}
	pipeline = append(pipeline, basesvc.ImageJoinStages(global.MongoDB_ColNames.Images, "avatarId", "avatar", cfg.Host, cfg.PublicImagesPath)...)
	pipeline = append(pipeline, basesvc.ImageJoinStages(global.MongoDB_ColNames.Images, "coverId", "cover", cfg.Host, cfg.PublicImagesPath)...)
	pipeline = append(pipeline,
		basesvc.LookupStage(global.MongoDB_ColNames.Subscriptions, "_id", "toAccountId", "_subs"),
		bson.M{"$addFields": bson.M{"subscribeCount": bson.M{"$size": "$_subs"}}},
	)
	strip := basesvc.StripSensitiveUserFields("")
	strip["_subs"] = 0
	pipeline = append(pipeline, bson.M{"$project": strip})
	return pipeline
}

// FindChannelProfile trả về trang kênh công khai của một tài khoản.
func (s *UserService) FindChannelProfile(ctx context.Context, accountID primitive.ObjectID) (*models.ChannelProfileView, error) {
	cursor, err := s.Collection().Aggregate(ctx, buildChannelProfilePipeline(accountID))
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var results []models.ChannelProfileView
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}
