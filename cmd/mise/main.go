package main

import (
	"github.com/mchmarny/mise/pkg/cli"
)

func main() {
	cli.Execute()
}
