package typeutils

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// Compare returns 0 for equal, -1 if a < b else 1 if a > b. Replication-key
// values here are ISO-8601 date strings or numbers; anything else falls back
// to string comparison.
func Compare(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	switch aVal := a.(type) {
	case uint, uint8, uint16, uint32, uint64:
		aUint := reflect.ValueOf(a).Convert(reflect.TypeOf(uint64(0))).Uint()
		bUint := reflect.ValueOf(b).Convert(reflect.TypeOf(uint64(0))).Uint()
		if aUint < bUint {
			return -1
		} else if aUint > bUint {
			return 1
		}
		return 0
	case int, int8, int16, int32, int64:
		aInt := reflect.ValueOf(a).Convert(reflect.TypeOf(int64(0))).Int()
		bInt := reflect.ValueOf(b).Convert(reflect.TypeOf(int64(0))).Int()
		if aInt < bInt {
			return -1
		} else if aInt > bInt {
			return 1
		}
		return 0
	case float32, float64:
		aFloat := reflect.ValueOf(a).Convert(reflect.TypeOf(float64(0))).Float()
		bFloat := reflect.ValueOf(b).Convert(reflect.TypeOf(float64(0))).Float()

		if math.IsNaN(aFloat) {
			if math.IsNaN(bFloat) {
				return 0
			}
			return -1
		}
		if math.IsNaN(bFloat) {
			return 1
		}

		const eps = 1e-6
		diff := aFloat - bFloat
		if math.Abs(diff) < eps {
			return 0
		} else if diff < 0 {
			return -1
		}
		return 1
	case time.Time:
		bTime := b.(time.Time)
		return aVal.Compare(bTime)
	default:
		// ISO-8601 cursor strings order lexicographically
		return strings.Compare(fmt.Sprintf("%v", a), fmt.Sprintf("%v", b))
	}
}

// MaxCursor returns the larger of the two cursor values, treating nil as
// the smallest possible value.
func MaxCursor(a, b any) any {
	if Compare(a, b) == 1 {
		return a
	}
	return b
}
