package main

import (
	"fmt"
	"os"

	"ghactivity/cmd/ghactivity"
)

func main() {
	if err := ghactivity.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
