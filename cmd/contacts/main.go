// Command contacts is a local contact manager backed by SQLite.
package main

import (
	"os"

	"github.com/roach88/contacts/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
