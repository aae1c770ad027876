package main

import (
	"os"

	"github.com/Aut-Labs/nova-showcase/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
