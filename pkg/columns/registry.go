package columns

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/tabula/pkg/column"
)

// ErrUnknownType is returned by Lookup for a name no family carries.
var ErrUnknownType = errors.New("unknown column type")

var builtins = []column.AnyFactory{String, Int, Float, Bool, DateTime, Decimal, UUID}

// Types returns the names Lookup accepts, in registry order.
func Types() []string {
	names := make([]string, 0, len(builtins)+1)
	for _, f := range builtins {
		names = append(names, f.Name())
	}
	return append(names, "CATEGORY")
}

// Lookup returns the family registered under name, ignoring case. CATEGORY
// resolves to Categorical(categories...); the categories are ignored for
// every other family.
func Lookup(name string, categories ...string) (column.AnyFactory, error) {
	key := strings.ToUpper(strings.TrimSpace(name))
	if key == "CATEGORY" {
		return Categorical(categories...), nil
	}
	for _, f := range builtins {
		if f.Name() == key {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
}
