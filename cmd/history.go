package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cinebox-cli/cinebox/color"
	"github.com/cinebox-cli/cinebox/history"
	"github.com/cinebox-cli/cinebox/icon"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().IntP("limit", "l", 0, "Show at most this many titles")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently viewed titles",
	Run: func(cmd *cobra.Command, args []string) {
		recent, err := history.Recent()
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && len(recent) > limit {
			recent = recent[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			if recent == nil {
				recent = []*history.Viewed{}
			}
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(recent))
			return
		}

		if len(recent) == 0 {
			cmd.Println(style.Faint("Nothing viewed yet"))
			return
		}

		for _, viewed := range recent {
			cmd.Printf(
				"%s\t%s\t%s %s\n",
				style.Fg(color.Yellow)(viewed.Key()),
				style.Faint(viewed.ViewedAt.Local().Format("2006-01-02 15:04")),
				viewed,
				style.Faint(viewed.Kind.String()),
			)
		}
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

var historyRemoveCmd = &cobra.Command{
	Use:     "remove [kind/id]",
	Aliases: []string{"rm"},
	Short:   "Forget a viewed title by its key, as shown by history",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key, err := media.ParseKey(args[0])
		handleErr(err)

		removed, err := history.Remove(key)
		handleErr(err)
		if !removed {
			handleErr(errors.New("no viewed title " + key))
		}

		fmt.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Yellow)(key))
	},
}
