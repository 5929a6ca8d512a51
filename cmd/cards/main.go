package main

import (
	"os"

	"github.com/idilsaglam/cards/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
