package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell"
	"github.com/bibliotech-pro/bibliotech-go/library/shared/shell/config"
)

// cli carries the app built in PersistentPreRunE to the subcommands.
type cli struct {
	getenv func(string) string
	app    *app
}

// execute runs the command line in args and closes the app afterwards, also when the command failed.
// Cobra skips PersistentPostRunE after a failing RunE, so closing can't live there.
func (c *cli) execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)

	return errors.Join(err, c.close())
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}

	err := c.app.close()
	c.app = nil

	return err
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "bibliotech",
		Short:         "Manage a library catalog, its members and loans",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.FromLookup(c.getenv)
			if err != nil {
				return err
			}

			c.app, err = newApp(cmd.Context(), cfg, cmd.ErrOrStderr())

			return err
		},
	}

	root.AddCommand(
		c.statsCommand(),
		c.genresCommand(),
		c.trendCommand(),
		c.popularCommand(),
		c.recentCommand(),
		c.overdueCommand(),
		c.searchCommand(),
		c.booksCommand(),
		c.usersCommand(),
		c.loansCommand(),
		c.reviewsCommand(),
		c.exportCommand(),
		c.importCommand(),
		c.resetCommand(),
	)

	return root
}

var jsonOutput = jsoniter.ConfigCompatibleWithStandardLibrary

func printJSON(w io.Writer, value any) error {
	encoded, err := jsonOutput.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(encoded))

	return err
}

// printOutcome reports the business outcome of a command and warns when a change could not be saved.
func printOutcome(cmd *cobra.Command, subject string, result shell.HandlerResult, touchesLibraryData bool) error {
	switch {
	case result.Idempotent:
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: nothing to change\n", subject)
		return err
	case touchesLibraryData && !result.Persisted:
		_, err := fmt.Fprintf(cmd.ErrOrStderr(), "%s: applied, but the change could not be saved\n", subject)
		return errors.Join(err, errNotPersisted)
	default:
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\n", subject)
		return err
	}
}

var errNotPersisted = errors.New("change not persisted")
