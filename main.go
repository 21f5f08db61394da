package main

import (
	"os"

	"github.com/rtgeorge/resourceboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
