package main

import (
	"os"

	"github.com/verbolabs/verbo/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
