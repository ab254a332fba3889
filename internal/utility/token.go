package utility

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// TokenLifetime là thời gian sống của access token.
const TokenLifetime = 7 * 24 * time.Hour

// CreateToken tạo JWT token (HS256) chứa userId.
// time và randomNumber được nhúng vào claims để mỗi lần đăng nhập sinh ra token khác nhau.
func CreateToken(secret string, userID string, timeStr string, randomNumber string) (map[string]string, error) {
	claims := jwt.MapClaims{
		"userId":       userID,
		"time":         timeStr,
		"randomNumber": randomNumber,
		"exp":          time.Now().Add(TokenLifetime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("không thể ký JWT token: %w", err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken parse và validate JWT token, trả về userId trong claims.
// Trả về lỗi nếu token sai chữ ký, sai thuật toán hoặc đã hết hạn.
func ParseToken(secret string, tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("thuật toán ký không hợp lệ: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("token không hợp lệ")
	}

	userID, ok := claims["userId"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("token không chứa userId")
	}

	return userID, nil
}
