// Package mediadto - các cấu trúc dữ liệu đầu vào cho domain media.
package mediadto

// ImageCreateInput dữ liệu đầu vào khi ghi nhận metadata một ảnh đã upload
type ImageCreateInput struct {
	Name     string `json:"name" validate:"required,max=255" bson:"name"`
	MimeType string `json:"mimeType" validate:"required,max=100" bson:"mimeType"`
	Size     int64  `json:"size" validate:"gte=0" bson:"size"`
}
