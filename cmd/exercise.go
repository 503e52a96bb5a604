package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vadiminshakov/micros/core/exercise"
)

// newExerciseCmd evaluates def once from positional args, or runs its
// interactive flow when no args are given.
func newExerciseCmd(a *app, def exercise.Definition) *cobra.Command {
	names := make([]string, len(def.Params))
	for i, p := range def.Params {
		names[i] = p.Name
	}

	return &cobra.Command{
		Use:   fmt.Sprintf("%s [%s]", def.Name, strings.Join(names, " ")),
		Short: def.Description,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != len(def.Params) {
				return fmt.Errorf("%s takes %d argument(s) (%s) or none, got %d",
					def.Name, len(def.Params), strings.Join(names, ", "), len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.runInteractive(cmd, def.Name)
			}

			params := make(map[string]interface{}, len(args))
			for i, name := range names {
				params[name] = args[i]
			}

			result, err := exercise.Execute(def.Name, params)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func (a *app) runInteractive(cmd *cobra.Command, name string) error {
	s, closeFn, err := a.session(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	err = exercise.Run(cmd.Context(), name, s)
	if errors.Cause(err) == io.EOF {
		return nil
	}
	return err
}
