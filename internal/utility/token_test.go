// Package utility - Test vòng đời JWT token: tạo, parse, sai secret.
package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateToken_ParseToken_RoundTrip(t *testing.T) {
	secret := "test-secret"
	userID := "64f1a2b3c4d5e6f7a8b9c0d1"

	result, err := CreateToken(secret, userID, "1700000000", "12345")
	require.NoError(t, err)
	require.NotEmpty(t, result["token"], "CreateToken phải trả về token trong map")

	parsed, err := ParseToken(secret, result["token"])
	require.NoError(t, err)
	assert.Equal(t, userID, parsed, "userId parse ra phải khớp với userId lúc tạo")
}

func TestParseToken_SaiSecret(t *testing.T) {
	result, err := CreateToken("secret-a", "64f1a2b3c4d5e6f7a8b9c0d1", "t", "r")
	require.NoError(t, err)

	_, err = ParseToken("secret-b", result["token"])
	assert.Error(t, err, "token ký bằng secret khác phải bị từ chối")
}

func TestParseToken_TokenRac(t *testing.T) {
	_, err := ParseToken("secret", "khong-phai-jwt")
	assert.Error(t, err)

	_, err = ParseToken("secret", "")
	assert.Error(t, err)
}

func TestCreateToken_MoiLanDangNhapTokenKhacNhau(t *testing.T) {
	a, err := CreateToken("s", "u", "1700000000", "111")
	require.NoError(t, err)
	b, err := CreateToken("s", "u", "1700000001", "222")
	require.NoError(t, err)
	assert.NotEqual(t, a["token"], b["token"], "claims time/randomNumber khác nhau phải cho token khác nhau")
}
