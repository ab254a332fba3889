// Package authhdl xử lý các request xác thực và quản lý người dùng / kênh.
package authhdl

import (
	"fmt"

	authdto "meta_tube/internal/api/auth/dto"
	models "meta_tube/internal/api/auth/models"
	authsvc "meta_tube/internal/api/auth/service"
	basehdl "meta_tube/internal/api/base/handler"
	"meta_tube/internal/common"
	"meta_tube/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserRegisterInput, authdto.UserChangeInfoInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.User, authdto.UserRegisterInput, authdto.UserChangeInfoInput](userService)
	return &UserHandler{
		BaseHandler: baseHandler,
		userService: userService,
	}, nil
}

// sanitizeUser xóa các field lưu trữ nhạy cảm trước khi trả user ra ngoài
func sanitizeUser(user *models.User) {
	user.Password = ""
	user.Token = ""
	user.ForgotPasswordToken = ""
	user.VerifyEmailToken = ""
}

// HandleRegister đăng ký tài khoản mới
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserRegisterInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.Register(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		sanitizeUser(user)
		logger.LogAuth("register", c, map[string]interface{}{"account_id": user.ID.Hex()})
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleLogin đăng nhập bằng email/mật khẩu, trả về user kèm token JWT
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, token, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		sanitizeUser(user)
		logger.LogAuth("login", c, map[string]interface{}{"account_id": user.ID.Hex()})
		h.HandleResponse(c, fiber.Map{"user": user, "token": token}, nil)
		return nil
	})
}

// HandleGetMe lấy thông tin tài khoản của người dùng đang đăng nhập
func (h *UserHandler) HandleGetMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		user, err := h.userService.FindOneById(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		sanitizeUser(&user)
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleUpdateMe cập nhật thông tin kênh của người dùng đang đăng nhập
func (h *UserHandler) HandleUpdateMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		var input authdto.UserChangeInfoInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		user, err := h.userService.UpdateProfile(c.Context(), userID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		sanitizeUser(user)
		h.HandleResponse(c, user, nil)
		return nil
	})
}

// HandleGetChannel lấy trang kênh công khai của một tài khoản theo id
func (h *UserHandler) HandleGetChannel(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		accountID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		profile, err := h.userService.FindChannelProfile(c.Context(), accountID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, profile, nil)
		return nil
	})
}
