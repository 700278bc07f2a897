package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/contacts/internal/contact"
	"github.com/roach88/contacts/internal/form"
)

// NewUICommand creates the ui command. The root command runs the same thing
// when given no subcommand.
func NewUICommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive contact form",
		Long: `Open the interactive contact form.

The form shows the Name and Phone No fields, the Add/Update/Delete actions,
and the contact list. Type one command per line; "help" lists them.

Example:
  contacts ui --db ./contacts.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(rootOpts, cmd)
		},
	}
}

func runUI(opts *RootOptions, cmd *cobra.Command) error {
	st, d, err := openDispatcher(opts)
	if err != nil {
		// The form cannot start without its table, so both open failures end here.
		title := "Database Error"
		msg := "Could not connect to the database. Closing application."
		if contact.IsSchemaError(err) {
			msg = "Error creating table. Closing application."
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", title, msg)
		return &ExitError{Code: ExitCommandError, Message: msg, Err: err, Reported: true}
	}
	defer closeStore(opts, st)

	session := form.NewSession(d, cmd.InOrStdin(), cmd.OutOrStdout(), opts.Logger)
	if err := session.Run(cmd.Context()); err != nil {
		return WrapExitError(ExitFailure, "form session ended", err)
	}
	return nil
}
