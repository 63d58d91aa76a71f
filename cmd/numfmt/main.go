package main

import (
	"os"

	"github.com/cybanjar/intl-formatter/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
