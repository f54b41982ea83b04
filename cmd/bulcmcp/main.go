package main

import (
	"os"

	"github.com/lydakis/bulcmcp/internal/cli"
)

func main() {
	code := cli.Run(os.Args[1:])
	os.Exit(code)
}
