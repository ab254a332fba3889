// Package reportsvc - service báo cáo nội dung.
package reportsvc

import (
	"context"
	"fmt"

	basemodels "meta_tube/internal/api/base/models"
	basesvc "meta_tube/internal/api/base/service"
	commentmodels "meta_tube/internal/api/comment/models"
	reportdto "meta_tube/internal/api/report/dto"
	reportmodels "meta_tube/internal/api/report/models"
	"meta_tube/internal/common"
	"meta_tube/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportService là cấu trúc chứa các phương thức liên quan đến báo cáo
type ReportService struct {
	*basesvc.BaseServiceMongoImpl[reportmodels.Report]
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	reportCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reports)
	if !exist {
		return nil, fmt.Errorf("failed to get reports collection: %v", common.ErrNotFound)
	}

	return &ReportService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[reportmodels.Report](reportCollection),
	}, nil
}

// CreateReport tạo báo cáo mới của accountID trên một nội dung.
func (s *ReportService) CreateReport(ctx context.Context, accountID primitive.ObjectID, input *reportdto.ReportCreateInput) (*reportmodels.Report, error) {
	contentType := commentmodels.ContentType(input.ContentType)
	if !contentType.Valid() {
		return nil, common.ErrInvalidInput
	}
	contentID, err := primitive.ObjectIDFromHex(input.ContentID)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}

	report := reportmodels.Report{
		AccountID:   accountID,
		ContentID:   contentID,
		ContentType: contentType,
		Content:     input.Content,
	}
	created, err := s.InsertOne(ctx, report)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Resolve chuyển báo cáo sang trạng thái đã xử lý.
func (s *ReportService) Resolve(ctx context.Context, reportID primitive.ObjectID) (*reportmodels.Report, error) {
	resolved, err := s.UpdateOne(ctx, bson.M{"_id": reportID}, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": reportmodels.ReportStatusResolved},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &resolved, nil
}

// ListByStatus trả về trang báo cáo theo trạng thái, mới nhất trước.
func (s *ReportService) ListByStatus(ctx context.Context, status reportmodels.ReportStatus, page, limit int64) (*basemodels.PaginateResult[reportmodels.Report], error) {
	filter := bson.M{}
	if status != "" {
		if !status.Valid() {
			return nil, common.ErrInvalidInput
		}
		filter["status"] = status
	}
	pg := basesvc.NewPagination(page, limit)
	return basesvc.AggregatePaginated[reportmodels.Report](
		ctx,
		s.Collection(),
		[]bson.M{
			basesvc.MatchStage(filter),
			basesvc.SortStage("createdAt", -1),
		},
		nil,
		pg,
	)
}
