// Package reportdto định nghĩa input cho báo cáo nội dung.
package reportdto

// ReportCreateInput là dữ liệu đầu vào tạo báo cáo mới
type ReportCreateInput struct {
	ContentID   string `json:"contentId" validate:"required,len=24" transform:"str_objectid,map=ContentID"`
	ContentType string `json:"contentType" validate:"required,oneof=video post comment"`
	Content     string `json:"content" validate:"required,max=2000,no_xss"`
}

// ReportUpdateInput là dữ liệu đầu vào cập nhật nội dung báo cáo
type ReportUpdateInput struct {
	Content string `json:"content" validate:"required,max=2000,no_xss"`
}
