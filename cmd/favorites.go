package cmd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cinebox-cli/cinebox/color"
	"github.com/cinebox-cli/cinebox/favorites"
	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/icon"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/cinebox-cli/cinebox/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(favoritesCmd)
}

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage saved favorites",
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesListCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved favorites",
	Run: func(cmd *cobra.Command, args []string) {
		items, err := favorites.Default().Load()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			if items == nil {
				items = []media.Item{}
			}
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(items))
			return
		}

		if len(items) == 0 {
			cmd.Println(style.Faint("No favorites yet"))
			return
		}

		for _, item := range items {
			title := item.Title
			if year := item.Year(); year != "" {
				title += " (" + year + ")"
			}
			cmd.Printf("%s\t%s\t%s\n", style.Fg(color.Yellow)(item.Key()), style.Faint(item.Kind.String()), title)
		}

		cmd.Println(style.Faint(util.Quantify(len(items), "favorite", "favorites")))
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesRemoveCmd)
}

var favoritesRemoveCmd = &cobra.Command{
	Use:     "remove [kind/id]",
	Aliases: []string{"rm"},
	Short:   "Remove a favorite by its key, as shown by list",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key, err := media.ParseKey(args[0])
		handleErr(err)

		removed, err := favorites.Default().Remove(key)
		handleErr(err)
		if !removed {
			handleErr(errors.New("no favorite " + key))
		}

		fmt.Printf("%s removed %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Yellow)(key))
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesClearCmd)
}

var favoritesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every favorite",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(favorites.Default().Save(nil))
		fmt.Printf("%s favorites cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesExportCmd)
	favoritesExportCmd.Flags().StringP("output", "o", "", "File to write the favorites to")
	lo.Must0(favoritesExportCmd.MarkFlagRequired("output"))
}

var favoritesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the favorites to a JSON file",
	Run: func(cmd *cobra.Command, args []string) {
		items, err := favorites.Default().Load()
		handleErr(err)
		if items == nil {
			items = []media.Item{}
		}

		data, err := json.MarshalIndent(items, "", "  ")
		handleErr(err)

		output := lo.Must(cmd.Flags().GetString("output"))
		handleErr(filesystem.WriteAtomic(output, data))

		fmt.Printf(
			"%s exported %s to %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(len(items), "favorite", "favorites"),
			output,
		)
	},
}
