// Package reportmodels định nghĩa model báo cáo nội dung.
package reportmodels

import (
	commentmodels "meta_tube/internal/api/comment/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportStatus là trạng thái xử lý của một báo cáo
type ReportStatus string

const (
	ReportStatusUnresolved ReportStatus = "unresolved"
	ReportStatusResolved   ReportStatus = "resolved"
)

// Valid kiểm tra giá trị trạng thái báo cáo có hợp lệ không
func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusUnresolved, ReportStatusResolved:
		return true
	}
	return false
}

// Report là cấu trúc dữ liệu báo cáo một nội dung vi phạm
type Report struct {
	ID          primitive.ObjectID        `json:"id" bson:"_id,omitempty"`
	AccountID   primitive.ObjectID        `json:"accountId" bson:"accountId" index:"single:1"`
	ContentID   primitive.ObjectID        `json:"contentId" bson:"contentId" index:"single:1"`
	ContentType commentmodels.ContentType `json:"contentType" bson:"contentType"`
	Content     string                    `json:"content" bson:"content"`
	Status      ReportStatus              `json:"status" bson:"status" default:"unresolved" index:"single:1"`
	CreatedAt   int64                     `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                     `json:"updatedAt" bson:"updatedAt"`
}
