package exercise

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/micros/pkg/retry"
	"github.com/vadiminshakov/micros/ui"
)

// DefaultAttempts is how many times malformed input is asked for again.
const DefaultAttempts = 3

// ErrInvalidInput marks a value that could not be parsed.
var ErrInvalidInput = errors.New("invalid input")

// Prompter reads one line of user input after showing prompt.
type Prompter interface {
	ReadLine(prompt string) (string, error)
}

// Session is the I/O an interactive exercise runs against.
type Session struct {
	In       Prompter
	Out      io.Writer
	Attempts int
	Logger   *slog.Logger
}

func (s *Session) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Session) attempts() int {
	if s.Attempts > 0 {
		return s.Attempts
	}
	return DefaultAttempts
}

// RunOnce prompts every param of def, evaluates it and prints the result.
func (s *Session) RunOnce(ctx context.Context, def Definition) error {
	args, err := s.Collect(ctx, def.Params)
	if err != nil {
		return err
	}

	result, err := def.Eval(args)
	if err != nil {
		return errors.Wrap(err, def.Name)
	}

	s.logger().Debug("exercise evaluated", "exercise", def.Name, "args", args, "result", result)
	fmt.Fprintln(s.Out, result)

	return nil
}

// Collect reads the params in order and returns them keyed by name.
func (s *Session) Collect(ctx context.Context, params []Param) (map[string]interface{}, error) {
	args := make(map[string]interface{}, len(params))
	for _, p := range params {
		v, err := s.read(ctx, p)
		if err != nil {
			return nil, err
		}
		args[p.Name] = v
	}
	return args, nil
}

func (s *Session) read(ctx context.Context, p Param) (interface{}, error) {
	var value interface{}

	err := retry.Attempts(ctx, s.attempts(), func() error {
		line, err := s.In.ReadLine(p.Prompt)
		if err != nil {
			return err
		}

		v, err := parse(p, line)
		if err != nil {
			s.logger().Warn("rejected input", "param", p.Name, "input", line)
			fmt.Fprintln(s.Out, ui.Warning(err.Error()))
			return err
		}

		value = v
		return nil
	}, func(err error) bool {
		return errors.Cause(err) == ErrInvalidInput
	})
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", p.Name)
	}

	return value, nil
}

func parse(p Param, line string) (interface{}, error) {
	line = strings.TrimSpace(line)

	switch p.Kind {
	case KindNumber:
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Wrapf(ErrInvalidInput, "%q is not a number", line)
		}
		return v, nil
	default:
		v, err := strconv.Atoi(line)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "%q is not an integer", line)
		}
		return v, nil
	}
}

// intArg accepts ints, whole float64 values (as decoded from JSON) and
// numeric strings.
func intArg(args map[string]interface{}, name string) (int, error) {
	switch v := args[name].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, errors.Wrapf(ErrInvalidInput, "parameter '%s' must be an integer, got %v", name, v)
		}
		// float64(math.MaxInt) rounds up to 2^63, which is itself out of range
		if v < float64(math.MinInt) || v >= float64(math.MaxInt) {
			return 0, errors.Wrapf(ErrInvalidInput, "parameter '%s' is out of range, got %v", name, v)
		}
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidInput, "parameter '%s' must be an integer, got %q", name, v)
		}
		return n, nil
	case nil:
		return 0, errors.Errorf("parameter '%s' is required", name)
	default:
		return 0, errors.Wrapf(ErrInvalidInput, "parameter '%s' has unsupported type %T", name, v)
	}
}

func floatArg(args map[string]interface{}, name string) (float64, error) {
	switch v := args[name].(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, errors.Wrapf(ErrInvalidInput, "parameter '%s' must be a number, got %q", name, v)
		}
		return f, nil
	case nil:
		return 0, errors.Errorf("parameter '%s' is required", name)
	default:
		return 0, errors.Wrapf(ErrInvalidInput, "parameter '%s' has unsupported type %T", name, v)
	}
}
