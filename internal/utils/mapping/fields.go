// Package mapping implements the field dictionaries and bidirectional
// converters between portal domain records and SharePoint list item field
// bags. Outbound conversion sends only present fields; inbound conversion
// substitutes type-appropriate defaults so domain records are always fully
// populated.
package mapping

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FieldType classifies how a field is represented in the list store.
type FieldType int

const (
	Text FieldType = iota
	Number
	Boolean
	Date
	JSONBlob
	LookupID
)

// FieldDef binds a domain field name to its external column name and type.
type FieldDef struct {
	Domain   string
	External string
	Type     FieldType
}

// Dictionary is the static per-entity field table. It is pure data; a
// dictionary/schema mismatch silently drops the affected field, which is
// why Open-time schema diagnostics exist.
type Dictionary struct {
	defs     []FieldDef
	byDomain map[string]FieldDef
}

// NewDictionary builds a dictionary from defs. Duplicate domain names are a
// programming error and panic at startup.
func NewDictionary(defs ...FieldDef) Dictionary {
	byDomain := make(map[string]FieldDef, len(defs))
	for _, def := range defs {
		if _, dup := byDomain[def.Domain]; dup {
			panic(fmt.Sprintf("mapping: duplicate domain field %q", def.Domain))
		}
		byDomain[def.Domain] = def
	}
	return Dictionary{defs: defs, byDomain: byDomain}
}

// ToExternal converts a partial domain record into an external field
// payload. Only fields present in partial are emitted; nil and
// empty-string values are omitted, except boolean-typed fields, which are
// always coerced and sent so that falsy-but-present values become an
// explicit false. Fields absent from the dictionary are never sent.
func (d Dictionary) ToExternal(partial map[string]any) map[string]any {
	out := make(map[string]any, len(partial))
	for _, def := range d.defs {
		v, ok := partial[def.Domain]
		if !ok {
			continue
		}
		if def.Type == Boolean {
			out[def.External] = truthy(v)
			continue
		}
		if v == nil {
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		switch def.Type {
		case Number:
			out[def.External] = toFloat(v)
		case Date:
			out[def.External] = normalizeDate(v)
		case JSONBlob:
			buf, err := json.Marshal(v)
			if err != nil {
				slog.Warn("json-blob field could not be serialized, omitting",
					slog.String("field", def.Domain),
					slog.String("error", err.Error()))
				continue
			}
			out[def.External] = string(buf)
		case LookupID:
			out[def.External] = toInt(v)
		default:
			out[def.External] = toString(v)
		}
	}
	return out
}

// FromExternal converts a raw external field bag into a fully populated
// domain value map keyed by domain field names. Missing fields default per
// type: empty string, 0, false, nil time, empty collection.
func (d Dictionary) FromExternal(fields map[string]any) map[string]any {
	out := make(map[string]any, len(d.defs))
	for _, def := range d.defs {
		raw := fields[def.External]
		switch def.Type {
		case Number:
			out[def.Domain] = parseFloat(raw)
		case Boolean:
			out[def.Domain] = truthy(raw)
		case Date:
			out[def.Domain] = parseTime(raw)
		case JSONBlob:
			out[def.Domain] = parseBlob(def.Domain, raw)
		case LookupID:
			out[def.Domain] = lookupIDString(raw)
		default:
			out[def.Domain] = unwrapText(raw)
		}
	}
	return out
}

// ClearValues builds a payload that explicitly nulls the external columns
// behind the given domain fields. Used by restore, which must clear the
// soft-delete triple rather than omit it.
func (d Dictionary) ClearValues(domainNames ...string) map[string]any {
	out := make(map[string]any, len(domainNames))
	for _, name := range domainNames {
		if def, ok := d.byDomain[name]; ok {
			out[def.External] = nil
		}
	}
	return out
}

// Defs returns the dictionary's field table in declaration order. Used by
// the provisioning tool to derive column definitions.
func (d Dictionary) Defs() []FieldDef {
	return d.defs
}

// External returns the external column name for a domain field, or "" when
// the field is not in the dictionary.
func (d Dictionary) External(domainName string) string {
	return d.byDomain[domainName].External
}

// MissingColumns returns the external names in the dictionary that have no
// counterpart in the live column set. Surfaced as a schema-mismatch
// diagnostic at open time; never a runtime error.
func (d Dictionary) MissingColumns(liveColumns map[string]bool) []string {
	var missing []string
	for _, def := range d.defs {
		if !liveColumns[def.External] {
			missing = append(missing, def.External)
		}
	}
	return missing
}

// --- outbound coercions ---

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case decimal.Decimal:
		f, _ := t.Float64()
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			slog.Debug("malformed numeric value coerced to 0", slog.Any("value", v))
			return 0
		}
		return f
	default:
		return 0
	}
}

func toInt(v any) int {
	return int(toFloat(v))
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "1" || s == "yes"
	case nil:
		return false
	default:
		return toFloat(v) != 0
	}
}

// normalizeDate appends a midnight-UTC time suffix to date-only strings so
// the store's date-time columns accept them. Qualified date-times pass
// through unchanged.
func normalizeDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.UTC().Format(time.RFC3339)
	case string:
		if len(t) == len("2006-01-02") && !strings.Contains(t, "T") {
			return t + "T00:00:00Z"
		}
		return t
	default:
		return toString(v)
	}
}

// --- inbound coercions ---

// unwrapText reads a text value, unwrapping person/lookup projections that
// nest the display value one level under "Title".
func unwrapText(raw any) string {
	switch t := raw.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		if title, ok := t["Title"].(string); ok {
			return title
		}
		return fmt.Sprint(raw)
	default:
		return fmt.Sprint(raw)
	}
}

// parseFloat tolerates numeric-as-text columns; malformed input falls back
// to 0 rather than propagating a parse failure.
func parseFloat(raw any) float64 {
	if raw == nil {
		return 0
	}
	return toFloat(raw)
}

func parseTime(raw any) *time.Time {
	s, ok := raw.(string)
	if !ok || s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			u := t.UTC()
			return &u
		}
	}
	slog.Debug("unparseable date value ignored", slog.String("value", s))
	return nil
}

// parseBlob parses a json-blob column back into a string collection. A
// parse failure is logged and yields an empty collection, never an error.
func parseBlob(field string, raw any) []string {
	s, ok := raw.(string)
	if !ok || s == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(s), &items); err == nil {
		return items
	}
	// Tolerate blobs of non-string scalars by re-rendering each element.
	var anything []any
	if err := json.Unmarshal([]byte(s), &anything); err != nil {
		slog.Warn("json-blob field failed to parse, defaulting to empty collection",
			slog.String("field", field),
			slog.String("error", err.Error()))
		return []string{}
	}
	items = make([]string, len(anything))
	for i, v := range anything {
		items[i] = toString(v)
	}
	return items
}

func lookupIDString(raw any) string {
	switch t := raw.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(raw)
	}
}

// --- typed accessors for decoded value maps ---

// Str reads a string from a decoded value map.
func Str(vals map[string]any, key string) string {
	s, _ := vals[key].(string)
	return s
}

// F64 reads a float64 from a decoded value map.
func F64(vals map[string]any, key string) float64 {
	f, _ := vals[key].(float64)
	return f
}

// IntVal reads an integer (stored as a number) from a decoded value map.
func IntVal(vals map[string]any, key string) int {
	return int(F64(vals, key))
}

// BoolVal reads a bool from a decoded value map.
func BoolVal(vals map[string]any, key string) bool {
	b, _ := vals[key].(bool)
	return b
}

// TimePtr reads an optional timestamp from a decoded value map.
func TimePtr(vals map[string]any, key string) *time.Time {
	t, _ := vals[key].(*time.Time)
	return t
}

// StrList reads a json-blob collection from a decoded value map.
func StrList(vals map[string]any, key string) []string {
	l, _ := vals[key].([]string)
	if l == nil {
		return []string{}
	}
	return l
}

// Dec reads a decimal amount from a decoded numeric value.
func Dec(vals map[string]any, key string) decimal.Decimal {
	return decimal.NewFromFloat(F64(vals, key))
}
