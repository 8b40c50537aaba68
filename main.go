// Package main is the entry point of gtv.
package main

import (
	"github.com/gtv-cli/gtv/cmd"
	"github.com/gtv-cli/gtv/config"
	"github.com/gtv-cli/gtv/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
