package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/cinebox-cli/cinebox/color"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/cinebox-cli/cinebox/tmdb"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(genresCmd)

	genresCmd.Flags().StringP("kind", "k", "movie", "Genres of: movie, tv or anime")
	genresCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	lo.Must0(genresCmd.RegisterFlagCompletionFunc("kind", completeKinds))
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the genres accepted by search --genre",
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := media.ParseKind(lo.Must(cmd.Flags().GetString("kind")))
		handleErr(err)

		genres, err := tmdb.NewFromConfig(viper.GetString(key.SettingsLanguage)).Genres(cmd.Context(), kind)
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			if genres == nil {
				genres = []media.Genre{}
			}
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(genres))
			return
		}

		for _, genre := range genres {
			cmd.Printf("%s %s\n", style.Fg(color.Yellow)(fmt.Sprintf("%6d", genre.ID)), genre.Name)
		}
	},
}
