package cast

import (
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"net/mail"
	"net/netip"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/dmitrymomot/envkit/pkg/kind"
)

// converters holds exactly one converter per data kind.
// It is filled once in init and never modified afterwards.
var converters map[kind.Kind]Converter

func init() {
	converters = map[kind.Kind]Converter{
		kind.String:       convertString,
		kind.Integer:      convertInteger,
		kind.Float:        convertFloat,
		kind.Boolean:      convertBoolean,
		kind.Date:         convertDate,
		kind.Timestamp:    convertTimestamp,
		kind.Duration:     convertDuration,
		kind.List:         convertList,
		kind.Enumeration:  convertEnumeration,
		kind.Object:       convertObject,
		kind.UUID:         convertUUID,
		kind.URI:          convertURI,
		kind.IPv4:         convertIPv4,
		kind.EmailAddress: convertEmailAddress,
		kind.Hexadecimal:  convertHexadecimal,
	}
}

var (
	truthy = map[string]bool{"true": true, "1": true}
	falsy  = map[string]bool{"false": true, "0": true}
)

// formatError wraps a parse failure. Callers only pass causes whose message
// does not repeat the raw value: environment variables often carry credentials.
func formatError(k kind.Kind, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w: not a valid %s", ErrFormat, k)
	}
	return fmt.Errorf("%w: not a valid %s: %w", ErrFormat, k, cause)
}

// numError strips the input echoed by strconv errors.
func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return nil
}

// text returns the string form of a raw value.
func text(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return Format(v)
	}
}

func convertString(value any, _ *Options) (any, error) {
	return text(value), nil
}

func convertInteger(value any, _ *Options) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return nil, formatError(kind.Integer, strconv.ErrRange)
		}
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return nil, formatError(kind.Integer, strconv.ErrRange)
		}
		return int64(v), nil
	}

	n, err := strconv.ParseInt(strings.TrimSpace(text(value)), 10, 64)
	if err != nil {
		return nil, formatError(kind.Integer, numError(err))
	}
	return n, nil
}

func convertFloat(value any, _ *Options) (any, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(text(value)), 64)
	if err != nil {
		return nil, formatError(kind.Float, numError(err))
	}
	return f, nil
}

func convertBoolean(value any, _ *Options) (any, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}

	// Casers keep state, so a fresh one is built per call.
	token := cases.Fold().String(strings.TrimSpace(text(value)))
	switch {
	case truthy[token]:
		return true, nil
	case falsy[token]:
		return false, nil
	}
	return nil, formatError(kind.Boolean, nil)
}

func convertDate(value any, o *Options) (any, error) {
	if t, ok := value.(time.Time); ok {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}

	raw := strings.TrimSpace(text(value))
	layout := o.Layout
	if layout == "" {
		layout = DateLayout
	}

	t, err := time.Parse(layout, raw)
	if err != nil {
		return nil, formatError(kind.Date, nil)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

func convertTimestamp(value any, o *Options) (any, error) {
	if t, ok := value.(time.Time); ok {
		return t, nil
	}

	raw := strings.TrimSpace(text(value))
	if o.Layout != "" {
		t, err := time.Parse(o.Layout, raw)
		if err != nil {
			return nil, formatError(kind.Timestamp, nil)
		}
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Format writes midnight UTC times as bare dates.
		if d, derr := time.Parse(DateLayout, raw); derr == nil {
			return d, nil
		}
		return nil, formatError(kind.Timestamp, nil)
	}
	return t, nil
}

func convertDuration(value any, _ *Options) (any, error) {
	if d, ok := value.(time.Duration); ok {
		return d, nil
	}

	d, err := time.ParseDuration(strings.TrimSpace(text(value)))
	if err != nil {
		return nil, formatError(kind.Duration, nil)
	}
	return d, nil
}

func convertList(value any, o *Options) (any, error) {
	if !o.ItemKind.IsValid() {
		return nil, fmt.Errorf("%w: list values require an item kind", ErrInvalidArgument)
	}
	if o.ItemKind == kind.List {
		return nil, fmt.Errorf("%w: nested lists are not supported", ErrInvalidArgument)
	}

	items, err := listItems(value, o.Separator)
	if err != nil {
		return nil, err
	}

	list := make([]any, 0, len(items))
	for i, item := range items {
		v, err := cast(item, o.ItemKind, o)
		if err != nil {
			return nil, fmt.Errorf("list item %d: %w", i, err)
		}
		list = append(list, v)
	}
	return list, nil
}

// listItems splits a raw list into its elements. Strings are split on sep
// with each item trimmed; Go slices supplied as defaults are used element-wise.
func listItems(value any, sep string) ([]any, error) {
	switch v := value.(type) {
	case string:
		return splitList(v, sep), nil
	case []byte:
		return splitList(string(v), sep), nil
	case []any:
		return v, nil
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, nil
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return splitList(text(value), sep), nil
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, nil
}

func splitList(raw, sep string) []any {
	if strings.TrimSpace(raw) == "" {
		return []any{}
	}
	parts := strings.Split(raw, sep)
	items := make([]any, len(parts))
	for i, p := range parts {
		items[i] = strings.TrimSpace(p)
	}
	return items
}

func convertEnumeration(value any, o *Options) (any, error) {
	if o.Enumeration == nil {
		return nil, fmt.Errorf("%w: enumeration values require an enumeration", ErrInvalidArgument)
	}

	if member, ok := memberOf(o.Enumeration, value); ok {
		return member, nil
	}

	raw := text(value)
	if member, ok := o.Enumeration.Lookup(raw); ok {
		return member, nil
	}
	if member, ok := memberByText(o.Enumeration, raw); ok {
		return member, nil
	}
	return nil, formatError(kind.Enumeration,
		fmt.Errorf("not a member of %s (%s)", o.Enumeration.Name(), strings.Join(o.Enumeration.Names(), ", ")))
}

// memberOf reports whether value already is a member of e. Plain strings are
// member names, not members, unless the members themselves are strings.
func memberOf(e Enumeration, value any) (any, bool) {
	if c, ok := e.(interface{ Contains(any) bool }); ok {
		if c.Contains(value) {
			return value, true
		}
		return nil, false
	}
	for _, name := range e.Names() {
		if m, ok := e.Lookup(name); ok && reflect.DeepEqual(m, value) {
			return m, true
		}
	}
	return nil, false
}

// memberByText finds the member whose string form is raw, so that members
// stored with Format read back.
func memberByText(e Enumeration, raw string) (any, bool) {
	for _, name := range e.Names() {
		if m, ok := e.Lookup(name); ok && Format(m) == raw {
			return m, true
		}
	}
	return nil, false
}

func convertUUID(value any, _ *Options) (any, error) {
	if id, ok := value.(uuid.UUID); ok {
		return id, nil
	}

	id, err := uuid.Parse(strings.TrimSpace(text(value)))
	if err != nil {
		return nil, formatError(kind.UUID, nil)
	}
	return id, nil
}

func convertURI(value any, _ *Options) (any, error) {
	switch v := value.(type) {
	case *url.URL:
		return v, nil
	case url.URL:
		return &v, nil
	}

	u, err := url.Parse(strings.TrimSpace(text(value)))
	if err != nil {
		return nil, formatError(kind.URI, nil)
	}
	if u.Scheme == "" {
		return nil, formatError(kind.URI, errors.New("missing scheme"))
	}
	return u, nil
}

func convertIPv4(value any, _ *Options) (any, error) {
	addr, ok := value.(netip.Addr)
	if !ok {
		var err error
		addr, err = netip.ParseAddr(strings.TrimSpace(text(value)))
		if err != nil {
			return nil, formatError(kind.IPv4, nil)
		}
	}
	if !addr.Is4() {
		return nil, formatError(kind.IPv4, errors.New("not an IPv4 address"))
	}
	return addr, nil
}

func convertEmailAddress(value any, _ *Options) (any, error) {
	addr, err := mail.ParseAddress(strings.TrimSpace(text(value)))
	if err != nil {
		return nil, formatError(kind.EmailAddress, nil)
	}
	return addr.Address, nil
}

func convertHexadecimal(value any, _ *Options) (any, error) {
	if b, ok := value.([]byte); ok {
		return b, nil
	}

	raw := strings.TrimSpace(text(value))
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, formatError(kind.Hexadecimal, nil)
	}
	return b, nil
}
