// Command csvloader is a single-shot batch loader: it reads a CSV file and
// inserts its rows into a database table inside one transaction. main is
// intentionally tiny; all logic lives in internal/cli.
package main

import (
	"os"

	"github.com/peterskim12/csvloader/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
