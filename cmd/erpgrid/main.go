package main

import (
	"os"

	"github.com/JonMunkholm/erpgrid/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
