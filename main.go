// Package main is the entry point for the playpen application.
package main

import (
	"github.com/playpen-cli/playpen/cmd"
	"github.com/playpen-cli/playpen/config"
	"github.com/playpen-cli/playpen/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
