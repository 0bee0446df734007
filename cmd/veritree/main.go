package main

import (
	"os"

	"github.com/kmaras/veritree/cmd/veritree/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
