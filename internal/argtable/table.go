package argtable

import (
	"log/slog"
	"sort"
	"strconv"
	"strings"
)

const negationPrefix = "no"

// Table is the parsed, read-only view of an argument vector. Keys are always
// in canonical single-dash form (e.g. "-VRI"). A nil *Table behaves like an
// empty one.
type Table struct {
	values map[string]string
	multi  map[string][]string
	names  []string // every base key seen, including negated ones
}

// entry is a single flag token after dash stripping and value splitting.
type entry struct {
	key     string // canonical base key, e.g. "-VRI"
	value   string
	negated bool
}

// Parse builds a Table from tokens, which must not include the program name.
func Parse(tokens []string) *Table {
	slog.Debug("Argument parser started.", "token_count", len(tokens))

	positive := make(map[string]string)
	negated := make(map[string]string)
	multi := make(map[string][]string)
	seen := make(map[string]struct{})

	for _, tok := range tokens {
		e, ok := parseToken(tok)
		if !ok {
			slog.Debug("Ignoring non-flag token.", "token", tok)
			continue
		}
		seen[e.key] = struct{}{}
		if e.negated {
			negated[e.key] = e.value
			continue
		}
		positive[e.key] = e.value
		multi[e.key] = append(multi[e.key], e.value)
	}

	values := make(map[string]string, len(positive)+len(negated))
	for key, v := range negated {
		if _, ok := positive[key]; ok {
			continue
		}
		// -noX=0 means "do not negate"; any other value removes the flag.
		if v == "0" {
			values[key] = "1"
			multi[key] = []string{"1"}
		}
	}
	for key, v := range positive {
		values[key] = v
	}

	names := make([]string, 0, len(seen))
	for key := range seen {
		names = append(names, key)
	}
	sort.Strings(names)

	slog.Debug("Argument parser finished.", "keys", len(values), "names", len(names))
	return &Table{values: values, multi: multi, names: names}
}

// ParseArgv is Parse for a full process argument vector; argv[0] is skipped.
func ParseArgv(argv []string) *Table {
	if len(argv) == 0 {
		return Parse(nil)
	}
	return Parse(argv[1:])
}

// parseToken reports whether tok is a flag and, if so, splits it into its
// canonical key and value.
func parseToken(tok string) (entry, bool) {
	name, ok := stripDashes(tok)
	if !ok {
		return entry{}, false
	}

	value := ""
	if i := strings.IndexByte(name, '='); i >= 0 {
		name, value = name[:i], name[i+1:]
	}
	if name == "" {
		return entry{}, false
	}

	if base, found := strings.CutPrefix(name, negationPrefix); found && base != "" {
		return entry{key: "-" + base, value: value, negated: true}, true
	}
	return entry{key: "-" + name, value: value}, true
}

// stripDashes removes one or two leading dashes. Tokens with no dash, with
// three or more dashes, or with nothing after the dashes are not flags.
func stripDashes(tok string) (string, bool) {
	var rest string
	switch {
	case strings.HasPrefix(tok, "--"):
		rest = tok[2:]
	case strings.HasPrefix(tok, "-"):
		rest = tok[1:]
	default:
		return "", false
	}
	if rest == "" || rest[0] == '-' {
		return "", false
	}
	return rest, true
}

// Has reports whether key is present in the table.
func (t *Table) Has(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.values[key]
	return ok
}

// GetString returns the value stored for key, or def if key is absent. A flag
// given without a value is present and yields "".
func (t *Table) GetString(key, def string) string {
	if t == nil {
		return def
	}
	if v, ok := t.values[key]; ok {
		return v
	}
	return def
}

// GetInt returns def if key is absent. Otherwise it parses the stored value as
// a base-10 signed integer and returns 0 when that fails.
func (t *Table) GetInt(key string, def int64) int64 {
	if !t.Has(key) {
		return def
	}
	n, err := strconv.ParseInt(t.values[key], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// GetBool returns def if key is absent. A present key is true unless its
// value is exactly "0".
func (t *Table) GetBool(key string, def bool) bool {
	if !t.Has(key) {
		return def
	}
	return t.values[key] != "0"
}

// Values returns every positive value given for key, in order of appearance.
// A key that is only present through -noKEY=0 yields ["1"].
func (t *Table) Values(key string) []string {
	if !t.Has(key) {
		return nil
	}
	out := make([]string, len(t.multi[key]))
	copy(out, t.multi[key])
	return out
}

// Keys returns the canonical keys in sorted order.
func (t *Table) Keys() []string {
	if t == nil {
		return nil
	}
	keys := make([]string, 0, len(t.values))
	for k := range t.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Names returns, in sorted order, the canonical base key of every flag that
// appeared, whether or not it survived negation. -noVRI contributes "-VRI".
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of keys.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.values)
}

// Map returns a copy of the key/value pairs.
func (t *Table) Map() map[string]string {
	out := make(map[string]string, t.Len())
	if t == nil {
		return out
	}
	for k, v := range t.values {
		out[k] = v
	}
	return out
}
