package toncenter

import (
	"strings"

	"toncenter-client/internal/utils"

	"github.com/ettle/strcase"
	"golang.org/x/exp/slices"
)

const sigil = "@"

// Policy decides what happens to metadata keys while a result is reshaped.
type Policy struct {
	name   string
	ignore []string
}

var (
	// PlainPolicy drops the tonlib metadata keys at every level of the result.
	PlainPolicy = Policy{name: "plain", ignore: []string{"@type", "@extra"}}

	// RPCPolicy keeps sigil keys; only the part after the sigil is recased.
	//
	// The split between the two policies mirrors what the gateway returns for
	// the REST and the jsonRPC endpoint families. Both should probably strip
	// the same keys, but callers already depend on the difference.
	RPCPolicy = Policy{name: "rpc"}
)

func (p Policy) String() string {
	return p.name
}

func (p Policy) drops(key string) bool {
	return slices.Contains(p.ignore, key)
}

// Transform walks a decoded JSON value and returns a copy with every object
// key camelCased. Keys listed in the policy are removed together with their
// values. The input is never modified.
//
// When several keys camelCase to the same name, a key already spelled that
// way wins; otherwise the smallest key in byte order does.
func Transform(v any, p Policy) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for _, k := range utils.SortedKeys(val) {
			if p.drops(k) {
				continue
			}
			name := CamelKey(k)
			if _, taken := out[name]; taken && name != k {
				continue
			}
			out[name] = Transform(val[k], p)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = Transform(item, p)
		}
		return out
	default:
		// nil, bool, json.Number, float64, string
		return v
	}
}

// CamelKey converts a snake_case (or kebab, dotted, spaced) key to camelCase.
// A leading sigil survives; the rest of the key is cased as usual.
// Casing is rune aware, and acronym runs are split before their last capital
// ("HTTPServer" -> "httpServer").
// A key made only of separators has no camel form and is returned unchanged.
func CamelKey(key string) string {
	prefix, rest := "", key
	if strings.HasPrefix(key, sigil) {
		prefix, rest = sigil, key[len(sigil):]
	}
	camel := strcase.ToCamel(rest)
	if camel == "" {
		return key
	}
	return prefix + camel
}
