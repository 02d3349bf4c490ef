package main

import (
	"github.com/Icinga/icinga2-diagnostics/pkg/cli"
)

func main() {
	cli.Execute()
}
