package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/contacts/internal/command"
	"github.com/roach88/contacts/internal/form"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <phone-no>",
		Short: "Add a contact",
		Long: `Add a contact. Phone numbers must be unique.

Example:
  contacts add "Alice" 555-0001`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())
			st, d, err := openDispatcher(rootOpts)
			if err != nil {
				return f.FailContact(err)
			}
			defer closeStore(rootOpts, st)

			res := d.Dispatch(cmd.Context(), command.Add{Name: args[0], PhoneNo: args[1]})
			if res.Err != nil {
				return f.FailContact(res.Err)
			}

			if f.Format == "json" {
				return f.Success(map[string]int64{"id": res.ID})
			}
			fmt.Fprintf(f.Writer, "Contact added successfully. (id %d)\n", res.ID)
			return nil
		},
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List all contacts",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())
			st, d, err := openDispatcher(rootOpts)
			if err != nil {
				return f.FailContact(err)
			}
			defer closeStore(rootOpts, st)

			res := d.Dispatch(cmd.Context(), command.List{})
			if res.Err != nil {
				return f.FailContact(res.Err)
			}

			if f.Format == "json" {
				return f.Success(res.Contacts)
			}
			form.RenderTable(f.Writer, res.Contacts, -1)
			return nil
		},
	}
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "get <id>",
		Short:         "Show one contact",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())
			id, err := parseID(args[0])
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeInvalidInput, err.Error(), nil)
			}

			st, d, err := openDispatcher(rootOpts)
			if err != nil {
				return f.FailContact(err)
			}
			defer closeStore(rootOpts, st)

			res := d.Dispatch(cmd.Context(), command.Get{ID: id})
			if res.Err != nil {
				return f.FailContact(res.Err)
			}
			if !res.Found {
				return f.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("No contact with ID %d.", id), nil)
			}

			if f.Format == "json" {
				return f.Success(res.Contact)
			}
			fmt.Fprintf(f.Writer, "ID:       %d\nName:     %s\nPhone No: %s\n",
				res.Contact.ID, res.Contact.Name, res.Contact.PhoneNo)
			return nil
		},
	}
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "update <id> <phone-no>",
		Short: "Change a contact's phone number",
		Long: `Change a contact's phone number. Names cannot be changed.

Example:
  contacts update 2 555-0003`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())
			id, err := parseID(args[0])
			if err != nil {
				return f.Fail(ExitCommandError, ErrCodeInvalidInput, err.Error(), nil)
			}

			st, d, err := openDispatcher(rootOpts)
			if err != nil {
				return f.FailContact(err)
			}
			defer closeStore(rootOpts, st)

			// Like selecting a row in the form: load it, then update it.
			got := d.Dispatch(cmd.Context(), command.Get{ID: id})
			if got.Err != nil {
				return f.FailContact(got.Err)
			}
			if !got.Found {
				return f.Fail(ExitFailure, ErrCodeNotFound, fmt.Sprintf("No contact with ID %d.", id), nil)
			}

			res := d.Dispatch(cmd.Context(), command.UpdatePhone{ID: id, Name: got.Contact.Name, PhoneNo: args[1]})
			if res.Err != nil {
				return f.FailContact(res.Err)
			}
			if res.Affected == 0 {
				return f.Fail(ExitFailure, ErrCodeNotFound, "Failed to update contact.", nil)
			}

			if f.Format == "json" {
				return f.Success(map[string]int64{"affected": res.Affected})
			}
			return f.Success("Contact updated successfully.")
		},
	}
}

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
	Yes bool
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact",
		Long: `Delete a contact. Asks for confirmation on stdin unless --yes is given.

Example:
  contacts delete 1 --yes`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runDelete(opts *DeleteOptions, rawID string, cmd *cobra.Command) error {
	f := opts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())
	id, err := parseID(rawID)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInvalidInput, err.Error(), nil)
	}

	if !opts.Yes {
		fmt.Fprint(f.GetErrWriter(), "Are you sure you want to delete this contact? [y/N] ")
		if !confirmed(cmd) {
			return f.Fail(ExitFailure, ErrCodeDeclined, "Delete cancelled.", nil)
		}
	}

	st, d, err := openDispatcher(opts.RootOptions)
	if err != nil {
		return f.FailContact(err)
	}
	defer closeStore(opts.RootOptions, st)

	res := d.Dispatch(cmd.Context(), command.Delete{ID: id})
	if res.Err != nil {
		return f.FailContact(res.Err)
	}
	if res.Affected == 0 {
		return f.Fail(ExitFailure, ErrCodeNotFound, "Failed to delete contact.", nil)
	}

	if f.Format == "json" {
		return f.Success(map[string]int64{"affected": res.Affected})
	}
	return f.Success("Contact deleted successfully.")
}

// confirmed reads one line from the command's stdin and reports y/yes.
func confirmed(cmd *cobra.Command) bool {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid contact id %q: must be a positive integer", raw)
	}
	return id, nil
}
