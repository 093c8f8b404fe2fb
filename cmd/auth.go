package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cinebox-cli/cinebox/auth"
	"github.com/cinebox-cli/cinebox/color"
	"github.com/cinebox-cli/cinebox/icon"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/cinebox-cli/cinebox/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the TMDB token stored in the system keyring",
	Long: `Manage the TMDB token stored in the system keyring.

The token is read from tmdb.api_key (or CINEBOX_TMDB_API_KEY) first and
from the keyring otherwise. Both v4 read access tokens and v3 api keys work.`,
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().StringP("token", "t", "", "Token to store, prompted for when omitted")
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a token in the keyring",
	Run: func(cmd *cobra.Command, args []string) {
		token := lo.Must(cmd.Flags().GetString("token"))

		if token == "" {
			handleErr(survey.AskOne(&survey.Password{
				Message: "TMDB token",
				Help:    "Create one at https://www.themoviedb.org/settings/api",
			}, &token, survey.WithValidator(survey.Required)))
		}

		token = strings.TrimSpace(token)
		if token == "" {
			handleErr(errors.New("empty token"))
		}

		handleErr(auth.SetAPIKey(token))
		fmt.Printf("%s token saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authRemoveCmd)
}

var authRemoveCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"logout"},
	Short:   "Delete the stored token",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteAPIKey())
		fmt.Printf("%s token removed\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the token comes from",
	Run: func(cmd *cobra.Command, args []string) {
		if configured := viper.GetString(key.TMDBAPIKey); configured != "" {
			cmd.Printf("%s token set in config or environment: %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), mask(configured))
			return
		}

		stored, err := auth.GetAPIKey()
		switch {
		case errors.Is(err, auth.ErrNoToken):
			cmd.Printf("%s no token, run %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), style.Fg(color.Yellow)("cinebox auth set"))
		case err != nil:
			handleErr(err)
		default:
			cmd.Printf("%s token stored in keyring: %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), mask(stored))
		}
	},
}

// mask keeps the last four characters of a secret.
func mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", util.Min(len(secret)-4, 12)) + secret[len(secret)-4:]
}
