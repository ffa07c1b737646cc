package main

import (
	"os"

	"github.com/27piyush27/folio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
