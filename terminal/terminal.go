package terminal

import (
	"context"
	"io"
	"log/slog"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/micros/core/config"
	"github.com/vadiminshakov/micros/core/exercise"
	"github.com/vadiminshakov/micros/ui"
)

const exitItem = "exit"

// RunTerminal shows the exercise menu until the user picks exit.
func RunTerminal(ctx context.Context, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	ui.ShowWelcome(out)

	items := append(exercise.List(), exitItem)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		sel := promptui.Select{
			Label: "Select exercise",
			Items: items,
		}
		_, choice, err := sel.Run()
		if err != nil {
			if err == promptui.ErrInterrupt || err == promptui.ErrEOF {
				return nil
			}
			return errors.Wrap(err, "menu")
		}

		if choice == exitItem {
			return nil
		}

		if err := runInConsole(ctx, choice, cfg, logger, out); err != nil {
			ui.ShowError(out, err)
		}
	}
}

// runInConsole opens readline only for the duration of one exercise so it
// does not compete with the menu for stdin.
func runInConsole(ctx context.Context, name string, cfg config.Config, logger *slog.Logger, out io.Writer) error {
	console, err := ui.NewConsole(cfg.HistoryFile)
	if err != nil {
		return err
	}
	defer console.Close()

	s := &exercise.Session{
		In:       console,
		Out:      out,
		Attempts: cfg.MaxAttempts,
		Logger:   logger,
	}

	err = exercise.Run(ctx, name, s)
	if errors.Cause(err) == io.EOF {
		return nil
	}
	return err
}
