// pkg/converter/values.go
package converter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// timeLayouts are tried in order for text timestamps
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00", // modernc sqlite
	"2006-01-02 15:04:05.999999999 -0700 MST", // time.Time.String
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Normalize converts driver byte slices to strings so bound rows are safe
// to retain and render. Other values pass through unchanged.
func Normalize(value interface{}) interface{} {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}

// isNull determines if a value should be treated as NULL
func (c *TypeConverter) isNull(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return c.isNullText(v)
	case []byte:
		return c.isNullText(string(v))
	}
	return false
}

func (c *TypeConverter) isNullText(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	return c.config.NullLiterals && strings.EqualFold(s, "null")
}

// ToText converts a value to text; NULL becomes the empty string
func (c *TypeConverter) ToText(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ToInt converts a value to int64
func (c *TypeConverter) ToInt(value interface{}) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, errors.New("nil value")
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > uint64(9223372036854775807) {
			return 0, errors.New("uint64 value overflow for int64")
		}
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	case []byte:
		return strconv.ParseInt(strings.TrimSpace(string(v)), 10, 64)
	default:
		return 0, fmt.Errorf("cannot convert %T to int", value)
	}
}

// ToDecimal converts a value to a nullable decimal. DECIMAL columns usually
// arrive as text and are parsed exactly.
func (c *TypeConverter) ToDecimal(value interface{}) (decimal.NullDecimal, error) {
	if c.isNull(value) {
		return decimal.NullDecimal{}, nil
	}

	var (
		d   decimal.Decimal
		err error
	)

	switch v := value.(type) {
	case decimal.Decimal:
		d = v
	case int:
		d = decimal.NewFromInt(int64(v))
	case int32:
		d = decimal.NewFromInt32(v)
	case int64:
		d = decimal.NewFromInt(v)
	case float32:
		d = decimal.NewFromFloat32(v)
	case float64:
		d = decimal.NewFromFloat(v)
	case string:
		d, err = decimal.NewFromString(strings.TrimSpace(v))
	case []byte:
		d, err = decimal.NewFromString(strings.TrimSpace(string(v)))
	default:
		return decimal.NullDecimal{}, fmt.Errorf("cannot convert %T to decimal", value)
	}

	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("cannot parse %q as decimal: %w", c.ToText(value), err)
	}
	return decimal.NewNullDecimal(d), nil
}

// ToTime converts a value to a nullable timestamp
func (c *TypeConverter) ToTime(value interface{}) (time.Time, bool, error) {
	if c.isNull(value) {
		return time.Time{}, false, nil
	}

	switch v := value.(type) {
	case time.Time:
		return v, true, nil
	case string:
		t, err := c.parseTime(v)
		return t, err == nil, err
	case []byte:
		t, err := c.parseTime(string(v))
		return t, err == nil, err
	case int64:
		// Assume Unix timestamp (seconds since epoch)
		return time.Unix(v, 0).In(c.config.Location), true, nil
	default:
		return time.Time{}, false, fmt.Errorf("cannot convert %T to timestamp", value)
	}
}

func (c *TypeConverter) parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	// monotonic clock reading
	if i := strings.Index(s, " m="); i >= 0 {
		s = s[:i]
	}
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, s, c.config.Location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse '%s' as timestamp", s)
}
