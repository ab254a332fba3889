package utility

import (
	"encoding/json"
	"strconv"
)

// P2Float64 chuyển đổi giá trị nhận từ request (json.Number hoặc chuỗi query) thành float64
func P2Float64(input interface{}) float64 {
	switch v := input.(type) {
	case json.Number:
		number, err := v.Float64()
		if err != nil {
			return 0
		}
		return number
	case string:
		number, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return number
	default:
		return 0
	}
}

// P2Int64 chuyển đổi giá trị nhận từ request (json.Number hoặc chuỗi query) thành int64
func P2Int64(input interface{}) int64 {
	switch v := input.(type) {
	case json.Number:
		result, err := v.Int64()
		if err != nil {
			return 0
		}
		return result
	case string:
		result, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return result
	default:
		return 0
	}
}
