package cast

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Format returns the string form of a typed value, the inverse of Cast for
// every scalar kind. It is what the environment setter stores.
//
//   - time.Time at midnight UTC is written as a date (2006-01-02), any other
//     time as RFC 3339 with nanoseconds.
//   - []byte is written as lower-case hex.
//   - Maps, structs and Object are written as JSON.
//   - Other slices are joined with DefaultSeparator.
//   - nil is the empty string.
func Format(value any) string {
	return FormatList(value, DefaultSeparator)
}

// FormatList is Format with lists joined by sep instead of DefaultSeparator.
// Empty separators fall back to DefaultSeparator.
func FormatList(value any, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Time:
		return formatTime(v)
	case time.Duration:
		return v.String()
	case []byte:
		return hex.EncodeToString(v)
	case *url.URL:
		if v == nil {
			return ""
		}
		return v.String()
	case Object, map[string]any, json.RawMessage:
		return formatJSON(v)
	case fmt.Stringer:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = FormatList(rv.Index(i).Interface(), sep)
		}
		return strings.Join(parts, sep)
	case reflect.Map, reflect.Struct:
		return formatJSON(value)
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
		return FormatList(rv.Elem().Interface(), sep)
	}
	return fmt.Sprint(value)
}

func formatTime(t time.Time) string {
	if t.Location() == time.UTC && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(DateLayout)
	}
	return t.Format(time.RFC3339Nano)
}

func formatJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
