// Package main is the entry point of cinebox.
package main

import (
	"github.com/cinebox-cli/cinebox/cmd"
	"github.com/cinebox-cli/cinebox/config"
	"github.com/cinebox-cli/cinebox/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
