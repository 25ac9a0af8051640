package main

import (
	"fmt"
	"os"

	"blokus/ui"
)

func main() {
	if err := ui.RunBlokus(); err != nil {
		fmt.Fprintf(os.Stderr, "error blokus: %v\n", err)
		os.Exit(1)
	}
}
