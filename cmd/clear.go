package cmd

import (
	"fmt"

	"github.com/cinebox-cli/cinebox/history"
	"github.com/cinebox-cli/cinebox/icon"
	"github.com/cinebox-cli/cinebox/query"
	"github.com/cinebox-cli/cinebox/util"
	"github.com/cinebox-cli/cinebox/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	clear    func() error
}

var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), func() error { return util.Delete(where.Cache()) }},
	{"queries history", "queries", mo.Some("q"), query.Clear},
	{"viewed history", "history", mo.Some("s"), history.Clear},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear cached responses and query history",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), target.name))
			err := target.clear()
			erase()
			handleErr(err)
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
