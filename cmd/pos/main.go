package main

import (
	"fmt"
	"os"

	"github.com/jhoicas/pos-terminal/cmd/pos/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
