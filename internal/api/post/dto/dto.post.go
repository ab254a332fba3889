// Package postdto - các cấu trúc dữ liệu đầu vào cho domain post.
package postdto

// PostCreateInput dữ liệu đầu vào khi tạo bài viết.
// Images nhận danh sách chuỗi hex ObjectID của ảnh đã upload.
type PostCreateInput struct {
	Content  string   `json:"content" validate:"required,max=10000,no_xss" bson:"content"`
	Images   []string `json:"images" validate:"omitempty,dive,len=24" bson:"images"`
	Audience string   `json:"audience" validate:"omitempty,oneof=everyone onlyme" bson:"audience"`
}

// PostUpdateInput dữ liệu đầu vào khi cập nhật bài viết
type PostUpdateInput struct {
	Content  string   `json:"content" validate:"omitempty,max=10000,no_xss" bson:"content"`
	Images   []string `json:"images" validate:"omitempty,dive,len=24" bson:"images"`
	Audience string   `json:"audience" validate:"omitempty,oneof=everyone onlyme" bson:"audience"`
}
