// Package videodto - các cấu trúc dữ liệu đầu vào cho domain video.
package videodto

// VideoCreateInput dữ liệu đầu vào khi tạo video mới.
// IdName (slug) do server sinh từ title, không nhận từ client.
type VideoCreateInput struct {
	Title       string `json:"title" validate:"required,max=255,no_xss" bson:"title"`
	Description string `json:"description" validate:"omitempty,max=5000,no_xss" bson:"description"`
	ThumbnailID string `json:"thumbnailId" validate:"omitempty,len=24" transform:"str_objectid,map=ThumbnailID,optional" bson:"thumbnailId"`
	CategoryID  string `json:"categoryId" validate:"omitempty,len=24,exists=categories" transform:"str_objectid,map=CategoryID,optional" bson:"categoryId"`
	Audience    string `json:"audience" validate:"omitempty,oneof=everyone onlyme" bson:"audience"`
}

// VideoUpdateInput dữ liệu đầu vào khi cập nhật video
type VideoUpdateInput struct {
	Title       string `json:"title" validate:"omitempty,max=255,no_xss" bson:"title"`
	Description string `json:"description" validate:"omitempty,max=5000,no_xss" bson:"description"`
	ThumbnailID string `json:"thumbnailId" validate:"omitempty,len=24" transform:"str_objectid,map=ThumbnailID,optional" bson:"thumbnailId"`
	CategoryID  string `json:"categoryId" validate:"omitempty,len=24,exists=categories" transform:"str_objectid,map=CategoryID,optional" bson:"categoryId"`
	Audience    string `json:"audience" validate:"omitempty,oneof=everyone onlyme" bson:"audience"`
}

// CategoryCreateInput dữ liệu đầu vào khi tạo danh mục
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,max=100" bson:"name"`
	Description string `json:"description" validate:"omitempty,max=500" bson:"description"`
}
