package main

import (
	"github.com/imposterparty/imposterparty/internal/cli"
)

func main() {
	cli.Execute()
}
