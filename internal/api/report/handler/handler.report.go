// Package reporthdl xử lý các request liên quan đến báo cáo nội dung.
package reporthdl

import (
	"fmt"

	basehdl "meta_tube/internal/api/base/handler"
	reportdto "meta_tube/internal/api/report/dto"
	reportmodels "meta_tube/internal/api/report/models"
	reportsvc "meta_tube/internal/api/report/service"
	"meta_tube/internal/common"
	"meta_tube/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportHandler xử lý các yêu cầu liên quan đến báo cáo
type ReportHandler struct {
	*basehdl.BaseHandler[reportmodels.Report, reportdto.ReportCreateInput, reportdto.ReportUpdateInput]
	reportService *reportsvc.ReportService
}

// NewReportHandler khởi tạo ReportHandler mới
func NewReportHandler() (*ReportHandler, error) {
	service, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}
	hdl := &ReportHandler{reportService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[reportmodels.Report, reportdto.ReportCreateInput, reportdto.ReportUpdateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleCreate tạo báo cáo mới của người dùng đang đăng nhập
func (h *ReportHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID := h.GetUserIDFromContext(c)
		if userID.IsZero() {
			h.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}
		var input reportdto.ReportCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		report, err := h.reportService.CreateReport(c.Context(), userID, &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, report, nil)
		return nil
	})
}

// HandleResolve chuyển một báo cáo sang trạng thái đã xử lý (chỉ admin)
func (h *ReportHandler) HandleResolve(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		reportID, err := primitive.ObjectIDFromHex(c.Params("id"))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, err))
			return nil
		}
		report, err := h.reportService.Resolve(c.Context(), reportID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		logger.LogModeration("resolve_report", c, map[string]interface{}{
			"report_id":    report.ID.Hex(),
			"content_id":   report.ContentID.Hex(),
			"content_type": string(report.ContentType),
		})
		h.HandleResponse(c, report, nil)
		return nil
	})
}

// HandleList trả về trang báo cáo theo trạng thái (chỉ admin).
// Query status: unresolved | resolved, bỏ trống lấy tất cả.
func (h *ReportHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		pg := basehdl.ParseListPagination(c)
		status := reportmodels.ReportStatus(c.Query("status"))
		result, err := h.reportService.ListByStatus(c.Context(), status, pg.Page, pg.Limit)
		basehdl.HandleViewResponse(c, result, err)
		return nil
	})
}
