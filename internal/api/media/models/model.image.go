// Package models - model metadata ảnh upload thuộc domain media.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image lưu metadata của một ảnh đã upload. Name là tên file dùng để dựng
// URL công khai (HOST + PUBLIC_IMAGES_PATH + "/" + name); file vật lý do
// tầng phục vụ static đảm nhiệm.
type Image struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	MimeType  string             `json:"mimeType" bson:"mimeType"`
	Size      int64              `json:"size" bson:"size"`
	AccountID primitive.ObjectID `json:"accountId" bson:"accountId" index:"single:1"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
