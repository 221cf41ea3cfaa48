package main

import (
	"os"

	"github.com/arthur-debert/cranes/cmd/cranes/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
