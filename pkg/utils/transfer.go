package utils

import (
	"strconv"
)

// Transfer converts a JWT payload value to an int64 user id. Token payloads
// round-trip through JSON, so numbers usually arrive as float64.
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

func ConvertStringToInt64(v string) (int64, error) {
	return strconv.ParseInt(v, 10, 64)
}
