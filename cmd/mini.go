package cmd

import (
	"github.com/cinebox-cli/cinebox/favorites"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/mini"
	"github.com/cinebox-cli/cinebox/tmdb"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().StringP("kind", "k", "", "What to browse: movie, tv, anime or multi, asked when omitted")
	miniCmd.Flags().BoolP("recent", "r", false, "Start from the recently viewed titles")
	lo.Must0(miniCmd.RegisterFlagCompletionFunc("kind", completeKinds))
}

var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Browse with simple prompts instead of the full screen interface",
	Run: func(cmd *cobra.Command, args []string) {
		client := tmdb.NewFromConfig(viper.GetString(key.SettingsLanguage))
		if !client.Authorized() {
			handleErr(tmdb.ErrMissingAPIKey)
		}

		options := &mini.Options{
			Catalog: client,
			Kind:    media.Movie,
			AskKind: !cmd.Flags().Changed("kind"),
			Recent:  lo.Must(cmd.Flags().GetBool("recent")),
		}

		if !options.AskKind {
			kind, err := media.ParseKind(lo.Must(cmd.Flags().GetString("kind")))
			handleErr(err)
			options.Kind = kind
		}

		if viper.GetBool(key.FavoritesPersist) {
			options.Store = favorites.Default()
		}

		handleErr(mini.Run(cmd.Context(), options))
	},
}
