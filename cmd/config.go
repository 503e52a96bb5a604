package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vadiminshakov/micros/core/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var show bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Run the configuration wizard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if show {
				data, err := json.MarshalIndent(a.cfg, "", "  ")
				if err != nil {
					return errors.Wrap(err, "failed to encode config")
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			path := a.cfgFile
			if path == "" {
				var err error
				if path, err = config.FilePath(); err != nil {
					return err
				}
			}

			cfg, err := config.InteractiveSetup(path, a.cfg)
			if err != nil {
				return errors.Wrap(err, "failed to configure")
			}
			a.cfg = cfg
			return nil
		},
	}

	cmd.Flags().BoolVar(&show, "show", false, "print the effective configuration and exit")

	return cmd
}
