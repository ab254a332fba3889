// Package videosvc - Test sinh idName và các builder pipeline listing video.
package videosvc

import (
	"strings"
	"testing"

	videomodels "meta_tube/internal/api/video/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMakeIdName_SinhSlugTuTieuDe(t *testing.T) {
	id := makeIdName("Hướng dẫn nấu Phở 2024!")
	parts := strings.Split(id, "-")
	require.GreaterOrEqual(t, len(parts), 2)

	suffix := parts[len(parts)-1]
	assert.Len(t, suffix, 8, "hậu tố ngẫu nhiên phải dài 8 ký tự")

	slug := strings.TrimSuffix(id, "-"+suffix)
	assert.Equal(t, "h-ng-d-n-n-u-ph-2024", slug)
	assert.NotContains(t, id, " ")
	assert.Equal(t, strings.ToLower(id), id, "idName phải toàn chữ thường")
}

func TestMakeIdName_TieuDeKhongCoKyTuHopLe(t *testing.T) {
	id := makeIdName("!!! ???")
	assert.Len(t, id, 8, "tiêu đề không có ký tự hợp lệ phải cho ra chỉ hậu tố ngẫu nhiên")
	assert.False(t, strings.HasPrefix(id, "-"))
}

func TestMakeIdName_HaiLanGoiKhacNhau(t *testing.T) {
	a := makeIdName("cung mot tieu de")
	b := makeIdName("cung mot tieu de")
	assert.NotEqual(t, a, b, "hai video trùng tiêu đề phải có idName khác nhau")
}

func TestBuildVideoBasePipeline_SortMacDinh(t *testing.T) {
	pipeline := buildVideoBasePipeline(bson.M{"audience": "everyone"}, VideoSort{})
	require.Len(t, pipeline, 2)

	assert.Equal(t, bson.M{"$match": bson.M{"audience": "everyone"}}, pipeline[0])
	assert.Equal(t, bson.M{"$sort": bson.M{"createdAt": -1}}, pipeline[1], "mặc định phải là mới nhất trước")
}

func TestBuildVideoBasePipeline_SortTheoQuery(t *testing.T) {
	pipeline := buildVideoBasePipeline(bson.M{}, VideoSort{SortBy: "title", OrderBy: "asc"})
	require.Len(t, pipeline, 2)
	assert.Equal(t, bson.M{"$sort": bson.M{"title": 1}}, pipeline[1])

	pipeline = buildVideoBasePipeline(bson.M{}, VideoSort{SortBy: "viewCount", OrderBy: "desc"})
	assert.Equal(t, bson.M{"$sort": bson.M{"viewCount": -1}}, pipeline[1])
}

func TestTitleSearchFilter_QuoteKyTuRegex(t *testing.T) {
	filter := titleSearchFilter("c++ (nâng cao)")
	re, ok := filter["title"].(primitive.Regex)
	require.True(t, ok)

	assert.Equal(t, "i", re.Options, "tìm kiếm phải không phân biệt hoa thường")
	assert.NotContains(t, re.Pattern, "(nâng", "ký tự regex trong query phải được quote")
	assert.Contains(t, re.Pattern, `c\+\+`)
}

func TestPublicVideoFilter_ChiVideoCongKhaiDangHoatDong(t *testing.T) {
	filter := publicVideoFilter()
	assert.Equal(t, videomodels.AudienceEveryone, filter["audience"])
	assert.Equal(t, videomodels.VideoStatusActive, filter["status"])
}
