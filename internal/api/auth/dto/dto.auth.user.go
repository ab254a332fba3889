// Package authdto - các cấu trúc dữ liệu đầu vào cho domain auth.
package authdto

// UserRegisterInput dữ liệu đầu vào khi đăng ký tài khoản mới
type UserRegisterInput struct {
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,strong_password"`
	ChannelName string `json:"channelName" validate:"omitempty,max=100"`
}

// UserLoginInput dữ liệu đầu vào khi đăng nhập
type UserLoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserChangeInfoInput dữ liệu đầu vào khi cập nhật thông tin kênh.
// AvatarID/CoverID nhận chuỗi hex ObjectID của ảnh đã upload.
type UserChangeInfoInput struct {
	ChannelName string `json:"channelName" validate:"omitempty,max=100" bson:"channelName"`
	Bio         string `json:"bio" validate:"omitempty,max=500,no_xss" bson:"bio"`
	AvatarID    string `json:"avatarId" validate:"omitempty,len=24" transform:"str_objectid,map=AvatarID,optional" bson:"avatarId"`
	CoverID     string `json:"coverId" validate:"omitempty,len=24" transform:"str_objectid,map=CoverID,optional" bson:"coverId"`
}
