package main

import (
	"github.com/jhooc77/gringotts/internal/cli"
)

func main() {
	cli.Execute()
}
