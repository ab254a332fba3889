// Package basesvc - Test chuẩn hóa tham số phân trang và tính tổng số trang.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination_ChuanHoaThamSo(t *testing.T) {
	tests := []struct {
		name      string
		page      int64
		limit     int64
		wantPage  int64
		wantLimit int64
		wantSkip  int64
	}{
		{"tham số hợp lệ", 3, 10, 3, 10, 20},
		{"page 0 về 1", 0, 10, 1, 10, 0},
		{"page âm về 1", -5, 10, 1, 10, 0},
		{"limit 0 về mặc định", 2, 0, 2, DefaultPageLimit, DefaultPageLimit},
		{"limit âm về mặc định", 1, -1, 1, DefaultPageLimit, 0},
		{"cả hai không hợp lệ", 0, 0, 1, DefaultPageLimit, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := NewPagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, pg.Page, "Page không đúng")
			assert.Equal(t, tt.wantLimit, pg.Limit, "Limit không đúng")
			assert.Equal(t, tt.wantSkip, pg.Skip, "Skip không đúng")
		})
	}
}

func TestPagination_TotalPage(t *testing.T) {
	pg := NewPagination(1, 10)

	assert.Equal(t, int64(0), pg.TotalPage(0), "total 0 phải cho 0 trang")
	assert.Equal(t, int64(1), pg.TotalPage(1), "total 1 phải cho 1 trang")
	assert.Equal(t, int64(1), pg.TotalPage(10), "total đúng bằng limit phải cho 1 trang")
	assert.Equal(t, int64(2), pg.TotalPage(11), "total 11 với limit 10 phải làm tròn lên 2 trang")
	assert.Equal(t, int64(10), pg.TotalPage(100), "total 100 với limit 10 phải cho 10 trang")
}
