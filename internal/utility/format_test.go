// Package utility - Test các hàm chuyển đổi định dạng và helper chung.
package utility

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestP2Int64(t *testing.T) {
	assert.Equal(t, int64(42), P2Int64(json.Number("42")))
	assert.Equal(t, int64(42), P2Int64("42"), "chuỗi query param phải parse được")
	assert.Equal(t, int64(0), P2Int64("abc"), "chuỗi không phải số phải về 0")
	assert.Equal(t, int64(0), P2Int64(nil))
	assert.Equal(t, int64(0), P2Int64(3.14), "kiểu không hỗ trợ phải về 0")
	assert.Equal(t, int64(-7), P2Int64("-7"))
}

func TestP2Float64(t *testing.T) {
	assert.Equal(t, 3.5, P2Float64(json.Number("3.5")))
	assert.Equal(t, 3.5, P2Float64("3.5"))
	assert.Equal(t, float64(0), P2Float64("x"))
	assert.Equal(t, float64(0), P2Float64(nil))
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.0 KB", FormatBytes(1024))
	assert.Equal(t, "1.5 MB", FormatBytes(1536*1024))
	assert.Equal(t, "1.0 GB", FormatBytes(1024*1024*1024))
}

func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	assert.Equal(t, id, String2ObjectID(id.Hex()))
	assert.Equal(t, primitive.NilObjectID, String2ObjectID("khong-hop-le"), "hex sai phải về NilObjectID")
	assert.Equal(t, primitive.NilObjectID, String2ObjectID(""))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"a", "b"}, "b"))
	assert.False(t, Contains([]string{"a", "b"}, "c"))
	assert.False(t, Contains[string](nil, "a"))
	assert.True(t, Contains([]int{1, 2, 3}, 2))
}

func TestToMap_GiuNguyenBsonTag(t *testing.T) {
	type sample struct {
		Name  string `bson:"name"`
		Count int64  `bson:"count"`
	}
	m, err := ToMap(sample{Name: "x", Count: 3})
	require.NoError(t, err)
	assert.Equal(t, "x", m["name"])
	assert.Equal(t, int64(3), m["count"])
	_, ok := m["Name"]
	assert.False(t, ok, "key phải theo bson tag, không phải tên field Go")
}

func TestParseTransformTag(t *testing.T) {
	cfg, err := ParseTransformTag("str_objectid,map=VideoID,optional")
	require.NoError(t, err)
	assert.Equal(t, "str_objectid", cfg.Type)
	assert.Equal(t, "VideoID", cfg.MapTo)
	assert.True(t, cfg.Optional)
	assert.False(t, cfg.Required)

	cfg, err = ParseTransformTag("str_time,format=2006-01-02,required")
	require.NoError(t, err)
	assert.Equal(t, "2006-01-02", cfg.Format)
	assert.True(t, cfg.Required)
}

func TestTransformFieldValue_StrObjectID(t *testing.T) {
	cfg, err := ParseTransformTag("str_objectid")
	require.NoError(t, err)

	id := primitive.NewObjectID()
	out, err := TransformFieldValue(id.Hex(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, id, out)

	_, err = TransformFieldValue("hex-sai", cfg, nil)
	assert.Error(t, err, "hex không hợp lệ phải trả về lỗi")

	out, err = TransformFieldValue("", cfg, nil)
	require.NoError(t, err)
	assert.Nil(t, out, "chuỗi rỗng không required phải bị bỏ qua")
}
