package argexpr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vk/getarg/internal/argtable"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Value converts the table into a cty map of strings keyed by bare flag name.
// cty stores keys in Unicode NFC form, so two flag names that differ only in
// normalization cannot both be represented; that case is an error.
func Value(t *argtable.Table) (cty.Value, error) {
	if t.Len() == 0 {
		return cty.MapValEmpty(cty.String), nil
	}
	vals := make(map[string]cty.Value, t.Len())
	for k, v := range t.Map() {
		vals[strings.TrimPrefix(k, "-")] = cty.StringVal(v)
	}
	m := cty.MapVal(vals)
	if m.LengthInt() != t.Len() {
		return cty.NilVal, fmt.Errorf("%d argument names collide after Unicode normalization", t.Len()-m.LengthInt())
	}
	return m, nil
}

// Convert looks up key and converts its raw string value to ty. An absent key
// yields a null value of ty.
func Convert(t *argtable.Table, key string, ty cty.Type) (cty.Value, error) {
	key = canonical(key)
	if !t.Has(key) {
		return cty.NullVal(ty), nil
	}
	val, err := convert.Convert(cty.StringVal(t.GetString(key, "")), ty)
	if err != nil {
		return cty.NilVal, fmt.Errorf("argument %s: %w", key, err)
	}
	return val, nil
}

// MarshalJSON encodes the table as a JSON object keyed by canonical key, in
// key order. Keys and values are written exactly as parsed, except that
// invalid UTF-8 sequences are replaced with U+FFFD.
func MarshalJSON(t *argtable.Table) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(t.Map()); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Render formats a value for terminal output.
func Render(v cty.Value) (string, error) {
	switch {
	case v.IsNull():
		return "null", nil
	case !v.IsKnown():
		return "", fmt.Errorf("cannot render unknown value of type %s", v.Type().FriendlyName())
	case v.Type() == cty.String:
		return v.AsString(), nil
	case v.Type() == cty.Number:
		return v.AsBigFloat().Text('f', -1), nil
	case v.Type() == cty.Bool:
		if v.True() {
			return "true", nil
		}
		return "false", nil
	}
	out, err := ctyjson.Marshal(v, v.Type())
	if err != nil {
		return "", fmt.Errorf("failed to encode %s value: %w", v.Type().FriendlyName(), err)
	}
	return string(out), nil
}

// canonical adds the leading dash to a bare flag name.
func canonical(name string) string {
	if strings.HasPrefix(name, "-") {
		return name
	}
	return "-" + name
}
