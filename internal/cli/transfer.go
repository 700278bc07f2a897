package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/contacts/internal/command"
	"github.com/roach88/contacts/internal/contact"
)

// Document is the export/import file format.
type Document struct {
	Contacts []contact.Contact `yaml:"contacts" json:"contacts"`
}

// documentSchema constrains import files. Records are closed: unknown keys
// are rejected rather than silently dropped.
const documentSchema = `
#Contact: {
	id?:      int
	name:     string & !=""
	phone_no: string & !=""
}

contacts: [...#Contact]
`

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
	Output string
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all contacts as YAML",
		Long: `Write all contacts as a YAML document, to stdout or to --output.

Example:
  contacts export -o backup.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")

	return cmd
}

func runExport(opts *ExportOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	st, d, err := openDispatcher(opts.RootOptions)
	if err != nil {
		return f.FailContact(err)
	}
	defer closeStore(opts.RootOptions, st)

	res := d.Dispatch(cmd.Context(), command.List{})
	if res.Err != nil {
		return f.FailContact(res.Err)
	}
	doc := Document{Contacts: res.Contacts}

	if opts.Output == "" {
		return writeDocument(f.Writer, doc)
	}

	if err := writeDocumentFile(opts.Output, doc); err != nil {
		return f.Fail(ExitCommandError, ErrCodeFile, fmt.Sprintf("writing %s", opts.Output), err)
	}
	f.VerboseLog("Wrote %d contact(s) to %s", len(doc.Contacts), opts.Output)

	if f.Format == "json" {
		return f.Success(map[string]any{"count": len(doc.Contacts), "path": opts.Output})
	}
	return f.Success(fmt.Sprintf("Exported %d contact(s) to %s", len(doc.Contacts), opts.Output))
}

func writeDocument(w io.Writer, doc Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

func writeDocumentFile(path string, doc Document) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeDocument(file, doc); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add contacts from a YAML document",
		Long: `Add contacts from a YAML document in the export format.

Every record needs a non-empty name and phone_no; ids in the file are
ignored. The import is all-or-nothing: one duplicate phone number aborts it.

Example:
  contacts import backup.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(rootOpts, args[0], cmd)
		},
	}
}

func runImport(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd.OutOrStdout(), cmd.ErrOrStderr())

	data, err := os.ReadFile(path)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeFile, fmt.Sprintf("reading %s", path), err)
	}

	doc, err := parseDocument(data)
	if err != nil {
		return f.Fail(ExitCommandError, ErrCodeInvalidInput, fmt.Sprintf("invalid document %s", path), err)
	}
	if len(doc.Contacts) == 0 {
		return f.Fail(ExitCommandError, ErrCodeInvalidInput, fmt.Sprintf("no contacts found in %s", path), nil)
	}
	f.VerboseLog("Validated %d contact(s) from %s", len(doc.Contacts), path)

	st, d, err := openDispatcher(opts)
	if err != nil {
		return f.FailContact(err)
	}
	defer closeStore(opts, st)

	res := d.Dispatch(cmd.Context(), command.Import{Contacts: doc.Contacts})
	if res.Err != nil {
		return f.FailContact(res.Err)
	}

	if f.Format == "json" {
		return f.Success(map[string]any{"ids": res.IDs})
	}
	return f.Success(fmt.Sprintf("Imported %d contact(s).", len(res.IDs)))
}

// parseDocument validates data against documentSchema and decodes it.
func parseDocument(data []byte) (Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("parsing YAML: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(documentSchema)
	if err := schema.Err(); err != nil {
		return Document{}, fmt.Errorf("compiling schema: %w", err)
	}

	value := ctx.Encode(raw)
	if err := value.Err(); err != nil {
		return Document{}, fmt.Errorf("encoding document: %w", err)
	}

	if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return Document{}, errors.New(cueerrors.Details(err, nil))
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decoding contacts: %w", err)
	}
	return doc, nil
}
