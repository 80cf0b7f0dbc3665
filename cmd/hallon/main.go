package main

import (
	"fmt"
	"os"

	"github.com/hallon-go/hallon/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "hallon: %v\n", err)
		os.Exit(1)
	}
}
