package main

import (
	"os"

	"github.com/nativegen/localekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
