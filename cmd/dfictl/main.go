// Command dfictl is the command-line interface to the interaction service.
package main

import (
	"os"

	"github.com/nutrirx/DrugFood-Intelligence/internal/interfaces/cli"
)

func main() {
	os.Exit(cli.Execute())
}
