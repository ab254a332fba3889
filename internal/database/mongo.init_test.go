// Package database - Test phân tích tag index trên model.
package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIndexTag_MotCauHinh(t *testing.T) {
	configs := parseIndexTag("single:1")
	require.Len(t, configs, 1)
	assert.Equal(t, "1", configs[0]["single"])
}

func TestParseIndexTag_NhieuCauHinh(t *testing.T) {
	configs := parseIndexTag("single:1;unique,sparse")
	require.Len(t, configs, 2)

	assert.Equal(t, "1", configs[0]["single"])

	_, hasUnique := configs[1]["unique"]
	_, hasSparse := configs[1]["sparse"]
	assert.True(t, hasUnique, "cấu hình thứ hai phải có unique")
	assert.True(t, hasSparse, "cấu hình thứ hai phải có sparse")
}

func TestParseIndexTag_CompoundGroup(t *testing.T) {
	configs := parseIndexTag("compound:account_content_unique")
	require.Len(t, configs, 1)
	assert.Equal(t, "account_content_unique", configs[0]["compound"])
}

func TestParseOrder(t *testing.T) {
	assert.Equal(t, 1, parseOrder("single:1"), "mặc định phải tăng dần")
	assert.Equal(t, -1, parseOrder("single:1,order:-1"))
	assert.Equal(t, 1, parseOrder(""))
}
