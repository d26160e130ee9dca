package main

import (
	"os"

	"github.com/wythers/tron-energy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
