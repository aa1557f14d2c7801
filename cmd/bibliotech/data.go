package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bibliotech-pro/bibliotech-go/library/features/command/importdata"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/core"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell/persistence"
)

func (c *cli) exportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a pretty-printed backup document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, _ := c.app.store.Snapshot()

			file, err := persistence.Export(state, c.app.now())
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(file.Content)
				return err
			}

			if out == "" {
				out = file.FileName
			}

			if err := os.WriteFile(out, file.Content, 0o600); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", out)

			return err
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "output file, - for stdout (default biblioteca-backup-YYYY-MM-DD.json)")

	return cmd
}

func (c *cli) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace books, users and loans with those of an exported document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			document, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading import: %w", err)
			}

			result, err := runCommand[importdata.Command](cmd.Context(), c.app,
				importdata.NewCommandHandler(c.app.workflow),
				importdata.BuildCommand(document, c.app.newID(), c.app.now()))
			if err != nil {
				return err
			}

			return printOutcome(cmd, "imported "+args[0], result, true)
		},
	}
}

func (c *cli) resetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Replace the stored data with the sample dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seed, err := c.app.adapter.Reset(cmd.Context())
			if err != nil {
				return err
			}

			if _, err := c.app.store.Dispatch(core.SetData{Data: seed}); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "restored the sample dataset")

			return err
		},
	}
}
