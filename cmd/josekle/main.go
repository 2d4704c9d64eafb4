package main

import (
	"os"

	"josekle/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
