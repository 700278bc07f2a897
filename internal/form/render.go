package form

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/contacts/internal/contact"
)

const (
	windowTitle      = "Contact Manager"
	defaultWidth     = 80
	fieldWidth       = 24
	minNameWidth     = 4
	selectedMarker   = "> "
	unselectedMarker = "  "
)

// Render draws the window: the Contact Details frame with both entry fields
// and the action buttons, then the Contact List table. The selected row is
// marked with ">".
func (f *Form) Render(w io.Writer) {
	fmt.Fprintln(w, windowTitle)
	fmt.Fprintln(w, strings.Repeat("=", len(windowTitle)))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Contact Details")
	fmt.Fprintf(w, "  Name:     [%s]\n", padRightRunes(display(f.Name), fieldWidth))
	fmt.Fprintf(w, "  Phone No: [%s]\n", padRightRunes(display(f.PhoneNo), fieldWidth))
	fmt.Fprintln(w, "  [Add Contact] [Update Contact] [Delete Contact]")
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Contact List (%d)\n", len(f.Rows))
	selectedID := int64(-1)
	if sel, ok := f.Selected(); ok {
		selectedID = sel.ID
	}
	RenderTable(w, f.Rows, selectedID)
}

// RenderTable draws rows as an ID / Name / Phone No table. The row whose id
// equals selectedID is marked with ">"; pass -1 for no selection.
func RenderTable(w io.Writer, rows []contact.Contact, selectedID int64) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "  No contacts.")
		return
	}

	idWidth := utf8.RuneCountInString("ID")
	nameWidth := utf8.RuneCountInString("Name")
	phoneWidth := utf8.RuneCountInString("Phone No")
	for _, c := range rows {
		idWidth = max(idWidth, len(strconv.FormatInt(c.ID, 10)))
		nameWidth = max(nameWidth, utf8.RuneCountInString(display(c.Name)))
		phoneWidth = max(phoneWidth, utf8.RuneCountInString(display(c.PhoneNo)))
	}

	// Names give way first when the terminal is narrow.
	available := outputWidth(w) - len(unselectedMarker) - idWidth - 2 - 2 - phoneWidth
	nameWidth = min(nameWidth, max(available, minNameWidth))

	fmt.Fprintf(w, "%s%s  %s  %s\n", unselectedMarker,
		padRightRunes("ID", idWidth), padRightRunes("Name", nameWidth), "Phone No")
	fmt.Fprintf(w, "%s%s  %s  %s\n", unselectedMarker,
		strings.Repeat("-", idWidth), strings.Repeat("-", nameWidth), strings.Repeat("-", phoneWidth))

	for _, c := range rows {
		marker := unselectedMarker
		if c.ID == selectedID {
			marker = selectedMarker
		}
		fmt.Fprintf(w, "%s%s  %s  %s\n", marker,
			padRightRunes(strconv.FormatInt(c.ID, 10), idWidth),
			padRightRunes(truncateRunes(display(c.Name), nameWidth), nameWidth),
			display(c.PhoneNo))
	}
}

// outputWidth returns the terminal width when w is a terminal, otherwise
// defaultWidth.
func outputWidth(w io.Writer) int {
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		if width, _, err := term.GetSize(int(file.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultWidth
}

// display composes s to NFC for drawing only, so combining marks don't
// inflate rune-based column widths. Stored values are never changed.
func display(s string) string {
	return norm.NFC.String(s)
}

func padRightRunes(s string, width int) string {
	missing := width - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(" ", missing)
}

func truncateRunes(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	if width <= 1 {
		return string([]rune(s)[:width])
	}
	return string([]rune(s)[:width-1]) + "~"
}
