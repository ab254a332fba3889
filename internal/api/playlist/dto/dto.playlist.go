// Package playlistdto định nghĩa input cho danh sách phát.
package playlistdto

// PlaylistCreateInput là dữ liệu đầu vào tạo danh sách phát mới
type PlaylistCreateInput struct {
	Name     string `json:"name" validate:"required,min=1,max=200,no_xss"`
	Audience string `json:"audience,omitempty" validate:"omitempty,oneof=everyone onlyme"`
}

// PlaylistUpdateInput là dữ liệu đầu vào cập nhật danh sách phát
type PlaylistUpdateInput struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=1,max=200,no_xss"`
	Audience string `json:"audience,omitempty" validate:"omitempty,oneof=everyone onlyme"`
}

// PlaylistVideoInput là dữ liệu đầu vào thêm video vào danh sách phát
type PlaylistVideoInput struct {
	VideoID string `json:"videoId" validate:"required,len=24" transform:"str_objectid,map=VideoID"`
}
