package fast

import (
	"errors"
	"fmt"
)

// ErrUnsupportedStrategy is returned by [ParseStrategy] for unknown names.
var ErrUnsupportedStrategy = errors.New("unsupported strategy")

var strategyNames = []string{"display", "debug", "json", "yaml", "html"}

// StrategyNames returns the names recognized by [ParseStrategy].
func StrategyNames() []string {
	out := make([]string, len(strategyNames))
	copy(out, strategyNames)
	return out
}

// ParseStrategy returns the built-in strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "display":
		return Display{}, nil
	case "debug":
		return Debug{}, nil
	case "json":
		return JSON{}, nil
	case "yaml":
		return YAML{}, nil
	case "html":
		return HTML{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, name)
	}
}
