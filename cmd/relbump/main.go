package main

import (
	"os"

	"github.com/raveheart1/relbump/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
