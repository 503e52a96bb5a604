package terminal

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/micros/core/config"
	"github.com/vadiminshakov/micros/core/exercise"
	"github.com/vadiminshakov/micros/ui"
)

// RunHeadless reads exercise names line by line from in and runs each one
// against the following lines. It stops at exit, quit or end of input.
func RunHeadless(ctx context.Context, in io.Reader, out io.Writer, cfg config.Config, logger *slog.Logger) error {
	reader := ui.NewLineReader(in, out)
	s := &exercise.Session{
		In:       reader,
		Out:      out,
		Attempts: cfg.MaxAttempts,
		Logger:   logger,
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := reader.ReadLine("")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "read exercise name")
		}

		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if name == "exit" || name == "quit" {
			return nil
		}

		err = exercise.Run(ctx, name, s)
		switch {
		case err == nil:
		case errors.Cause(err) == io.EOF:
			return nil
		default:
			logger.Warn("exercise failed", "exercise", name, "error", err)
			ui.ShowError(out, err)
		}
	}
}
