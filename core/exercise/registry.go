package exercise

import (
	"context"
	"log/slog"
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknown is returned for names that were never registered.
var ErrUnknown = errors.New("unknown exercise")

// EvalFunc computes the result sentence from parsed arguments.
type EvalFunc func(args map[string]interface{}) (string, error)

// RunFunc drives an exercise interactively.
type RunFunc func(ctx context.Context, s *Session) error

type ParamKind string

const (
	KindInt    ParamKind = "integer"
	KindNumber ParamKind = "number"
)

// Param describes one scalar an exercise reads.
type Param struct {
	Name        string
	Kind        ParamKind
	Prompt      string
	Description string
}

type Definition struct {
	Name        string
	Description string
	Params      []Param
	Eval        EvalFunc
	// Run is optional; without it the params are prompted once and Eval
	// is printed.
	Run RunFunc
}

var registry = make(map[string]Definition)

func Register(def Definition) {
	registry[def.Name] = def
}

func Lookup(name string) (Definition, bool) {
	def, ok := registry[name]
	return def, ok
}

// Execute evaluates a registered exercise with the given arguments.
func Execute(name string, args map[string]interface{}) (string, error) {
	def, ok := registry[name]
	if !ok {
		return "", errors.Wrap(ErrUnknown, name)
	}

	result, err := def.Eval(args)
	if err != nil {
		return "", errors.Wrap(err, name)
	}

	slog.Debug("exercise evaluated", "exercise", name, "args", args, "result", result)

	return result, nil
}

// Run starts the interactive flow of a registered exercise.
func Run(ctx context.Context, name string, s *Session) error {
	def, ok := registry[name]
	if !ok {
		return errors.Wrap(ErrUnknown, name)
	}

	if def.Run != nil {
		return def.Run(ctx, s)
	}

	return s.RunOnce(ctx, def)
}

func List() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Definitions returns all registered exercises ordered by name.
func Definitions() []Definition {
	names := List()
	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		defs = append(defs, registry[name])
	}
	return defs
}
