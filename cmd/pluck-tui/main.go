package main

import (
	"fmt"
	"os"

	"github.com/YSSF8/pluck/internal/config"
	"github.com/YSSF8/pluck/internal/tui"
)

func main() {
	if err := tui.Run(config.DefaultSettings()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
