// Package mediasvc - service metadata ảnh upload.
package mediasvc

import (
	"fmt"

	mediamodels "meta_tube/internal/api/media/models"
	basesvc "meta_tube/internal/api/base/service"
	"meta_tube/internal/common"
	"meta_tube/internal/global"
)

// ImageService là cấu trúc chứa các phương thức liên quan đến metadata ảnh
type ImageService struct {
	*basesvc.BaseServiceMongoImpl[mediamodels.Image]
}

// NewImageService tạo mới ImageService
func NewImageService() (*ImageService, error) {
	imageCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Images)
	if !exist {
		return nil, fmt.Errorf("failed to get images collection: %v", common.ErrNotFound)
	}

	return &ImageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[mediamodels.Image](imageCollection),
	}, nil
}

// PublicURL dựng URL công khai cho một tên file ảnh từ cấu hình server.
// Tên rỗng cho ra chuỗi rỗng, khớp quy tắc join tùy chọn của các read model.
func (s *ImageService) PublicURL(name string) string {
	if name == "" {
		return ""
	}
	cfg := global.MongoDB_ServerConfig
	return cfg.Host + cfg.PublicImagesPath + "/" + name
}
