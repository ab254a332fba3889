// Package utility - Test băm và so sánh mật khẩu bcrypt.
package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_ComparePassword(t *testing.T) {
	hashed, err := HashPassword("MatKhau@123")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	assert.NotEqual(t, "MatKhau@123", hashed, "hash không được trùng mật khẩu thô")

	assert.True(t, ComparePassword(hashed, "MatKhau@123"), "mật khẩu đúng phải khớp với hash")
	assert.False(t, ComparePassword(hashed, "MatKhauSai"), "mật khẩu sai không được khớp")
	assert.False(t, ComparePassword("", "MatKhau@123"), "hash rỗng không được khớp")
}

func TestHashPassword_HaiLanBamKhacNhau(t *testing.T) {
	a, err := HashPassword("cung-mot-mat-khau")
	require.NoError(t, err)
	b, err := HashPassword("cung-mot-mat-khau")
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "bcrypt phải sinh salt mới cho mỗi lần băm")
	assert.True(t, ComparePassword(a, "cung-mot-mat-khau"))
	assert.True(t, ComparePassword(b, "cung-mot-mat-khau"))
}
