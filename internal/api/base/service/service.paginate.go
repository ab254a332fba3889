package basesvc

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	basemodels "meta_tube/internal/api/base/models"
	"meta_tube/internal/common"
)

// Pagination chứa tham số phân trang đã chuẩn hóa.
// Page tính từ 1, Skip = (Page-1)*Limit.
type Pagination struct {
	Page  int64
	Limit int64
	Skip  int64
}

// DefaultPageLimit là số item mặc định trên một trang danh sách.
const DefaultPageLimit = 20

// NewPagination chuẩn hóa page/limit: page < 1 về 1, limit <= 0 về DefaultPageLimit.
func NewPagination(page, limit int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

// TotalPage tính tổng số trang từ tổng số bản ghi: 0 khi total = 0,
// ngược lại làm tròn lên (total + limit - 1) / limit.
func (p Pagination) TotalPage(total int64) int64 {
	if total == 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// AggregatePaginated chạy một pipeline aggregation với phân trang, trả về PaginateResult.
// basePipeline là pipeline dùng chung cho cả hai nhánh: nhánh dữ liệu nối thêm
// $skip/$limit + các stage trình bày (lookup, project...), nhánh đếm nối thêm $count.
// Cùng một basePipeline cho cả hai nhánh nên total luôn khớp với filter của items.
//
// Hai nhánh chạy song song; lỗi của bất kỳ nhánh nào làm toàn bộ thao tác thất bại.
func AggregatePaginated[T any](
	ctx context.Context,
	collection *mongo.Collection,
	basePipeline []bson.M,
	presentationStages []bson.M,
	pg Pagination,
) (*basemodels.PaginateResult[T], error) {
	// Nhánh dữ liệu: base + skip/limit + các stage trình bày
	dataPipeline := make([]bson.M, 0, len(basePipeline)+len(presentationStages)+2)
	dataPipeline = append(dataPipeline, basePipeline...)
	dataPipeline = append(dataPipeline, bson.M{"$skip": pg.Skip}, bson.M{"$limit": pg.Limit})
	dataPipeline = append(dataPipeline, presentationStages...)

	// Nhánh đếm: base + $count
	countPipeline := make([]bson.M, 0, len(basePipeline)+1)
	countPipeline = append(countPipeline, basePipeline...)
	countPipeline = append(countPipeline, bson.M{"$count": "total"})

	var (
		wg       sync.WaitGroup
		items    []T
		total    int64
		dataErr  error
		countErr error
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		cursor, err := collection.Aggregate(ctx, dataPipeline)
		if err != nil {
			dataErr = common.ConvertMongoError(err)
			return
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &items); err != nil {
			dataErr = common.ConvertMongoError(err)
		}
	}()

	go func() {
		defer wg.Done()
		cursor, err := collection.Aggregate(ctx, countPipeline)
		if err != nil {
			countErr = common.ConvertMongoError(err)
			return
		}
		defer cursor.Close(ctx)
		var results []struct {
			Total int64 `bson:"total"`
		}
		if err := cursor.All(ctx, &results); err != nil {
			countErr = common.ConvertMongoError(err)
			return
		}
		// $count không trả document nào khi không có bản ghi match
		if len(results) > 0 {
			total = results[0].Total
		}
	}()

	wg.Wait()

	if dataErr != nil {
		return nil, dataErr
	}
	if countErr != nil {
		return nil, countErr
	}

	if items == nil {
		items = []T{}
	}

	return &basemodels.PaginateResult[T]{
		Items:     items,
		Page:      pg.Page,
		Limit:     pg.Limit,
		ItemCount: int64(len(items)),
		Total:     total,
		TotalPage: pg.TotalPage(total),
	}, nil
}
