package main

import (
	"os"

	"jsfront/cmd/jsfront/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
