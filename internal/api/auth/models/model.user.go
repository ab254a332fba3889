// Package models - model người dùng / kênh (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRole là vai trò của người dùng trong hệ thống.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// UserStatus là trạng thái hoạt động của tài khoản.
type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusBlocked UserStatus = "blocked"
)

// VerifyStatus là trạng thái xác thực email của tài khoản.
type VerifyStatus string

const (
	VerifyStatusUnverified VerifyStatus = "unverified"
	VerifyStatusVerified   VerifyStatus = "verified"
)

// User định nghĩa mô hình người dùng, đồng thời là kênh (channel) của nền tảng.
// AvatarID/CoverID tham chiếu sang collection ảnh; URL đầy đủ chỉ được dựng
// trong các view đọc, không lưu trong document.
// Các field password/token/role/status/verify là phía lưu trữ, không bao giờ
// xuất hiện trong read model (xem basesvc.SensitiveUserFields).
type User struct {
	ID                  primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Username            string              `json:"username" bson:"username" index:"unique"`
	ChannelName         string              `json:"channelName" bson:"channelName"`
	Email               string              `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Bio                 string              `json:"bio,omitempty" bson:"bio,omitempty"`
	AvatarID            *primitive.ObjectID `json:"avatarId,omitempty" bson:"avatarId,omitempty"`
	CoverID             *primitive.ObjectID `json:"coverId,omitempty" bson:"coverId,omitempty"`
	Password            string              `json:"-" bson:"password,omitempty"`
	Role                UserRole            `json:"-" bson:"role" default:"user"`
	Status              UserStatus          `json:"-" bson:"status" default:"active"`
	Verify              VerifyStatus        `json:"-" bson:"verify" default:"unverified"`
	Token               string              `json:"-" bson:"token,omitempty"`
	ForgotPasswordToken string              `json:"-" bson:"forgotPasswordToken,omitempty"`
	VerifyEmailToken    string              `json:"-" bson:"verifyEmailToken,omitempty"`
	CreatedAt           int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt           int64               `json:"updatedAt" bson:"updatedAt"`
}
