package form

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

const helpText = `Commands:
  name <text>     set the Name field (empty clears it)
  phone <text>    set the Phone No field (empty clears it)
  select <id>     load a listed contact into the fields
  add             Add Contact
  update          Update Contact (selected row, phone only)
  delete          Delete Contact (selected row, asks first)
  clear           clear the fields and the selection
  refresh         reload the contact list
  help            show this help
  quit            exit`

// Session runs a Form as a line-oriented event loop. One gesture is read,
// dispatched to completion, and the window redrawn before the next is read.
type Session struct {
	form   *Form
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// NewSession creates a session reading gestures from in and drawing to out.
// Confirmation prompts consume the next input line. A nil logger uses
// slog.Default().
func NewSession(d Dispatcher, in io.Reader, out io.Writer, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	scanner := bufio.NewScanner(in)
	s := &Session{in: scanner, out: out, logger: logger}
	s.form = New(d, &terminalNotifier{in: scanner, out: out})
	return s
}

// Form returns the form driven by this session.
func (s *Session) Form() *Form {
	return s.form
}

// Run loads the contact list, draws the window, and processes gestures until
// "quit", end of input, or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.form.Refresh(ctx)
	s.form.Render(s.out)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			return s.in.Err()
		}

		verb, arg := splitGesture(s.in.Text())
		if verb == "" {
			continue
		}
		s.logger.DebugContext(ctx, "gesture", "verb", verb)

		switch verb {
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(s.out, helpText)
			continue
		case "name":
			s.form.Name = arg
		case "phone":
			s.form.PhoneNo = arg
		case "select":
			id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
			if err != nil {
				s.form.notify.Error("Error", "select needs a numeric contact ID.")
				continue
			}
			s.form.SelectRow(ctx, id)
		case "add":
			s.form.Add(ctx)
		case "update":
			s.form.Update(ctx)
		case "delete":
			s.form.Delete(ctx)
		case "clear":
			s.form.Clear()
		case "refresh":
			s.form.Refresh(ctx)
		default:
			fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for a list.\n", verb)
			continue
		}

		fmt.Fprintln(s.out)
		s.form.Render(s.out)
	}
}

// splitGesture splits a line into its verb and the raw remainder after the
// first space. The remainder is field text and is kept exactly as typed.
func splitGesture(line string) (verb, arg string) {
	line = strings.TrimLeft(strings.TrimSuffix(line, "\r"), " \t")
	verb, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(strings.TrimSpace(verb)), arg
}

// terminalNotifier prints notifications inline and reads confirmations from
// the shared input scanner.
type terminalNotifier struct {
	in  *bufio.Scanner
	out io.Writer
}

func (n *terminalNotifier) Info(title, message string) {
	fmt.Fprintf(n.out, "[%s] %s\n", title, message)
}

func (n *terminalNotifier) Error(title, message string) {
	fmt.Fprintf(n.out, "[%s] %s\n", title, message)
}

// Confirm treats anything other than y/yes, including end of input, as no.
func (n *terminalNotifier) Confirm(title, message string) bool {
	fmt.Fprintf(n.out, "[%s] %s [y/N] ", title, message)
	if !n.in.Scan() {
		fmt.Fprintln(n.out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(n.in.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
