package main

import (
	"fmt"
	"os"

	"github.com/bjaus/tabulate/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tabulate:", err)
		os.Exit(1)
	}
}
