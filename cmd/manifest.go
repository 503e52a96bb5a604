package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vadiminshakov/micros/core/exercise"
	"github.com/vadiminshakov/micros/core/manifest"
)

func newManifestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manifest",
		Short: "Print the exercises as MCP tool definitions (JSON)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tools := manifest.ConvertToMCPTools(exercise.Definitions())

			data, err := json.MarshalIndent(tools, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to encode manifest")
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}
