// Package cmd implements the command-line interface for cinebox.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/cinebox-cli/cinebox/color"
	"github.com/cinebox-cli/cinebox/constant"
	"github.com/cinebox-cli/cinebox/favorites"
	"github.com/cinebox-cli/cinebox/icon"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/log"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/settings"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/cinebox-cli/cinebox/tmdb"
	"github.com/cinebox-cli/cinebox/tui"
	"github.com/cinebox-cli/cinebox/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completeKinds(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(media.Kinds, func(k media.Kind, _ int) string { return k.String() }), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant: "+strings.Join(icon.AvailableVariants(), ", "))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("language", "L", "", "Interface and metadata language (en-US, pt-BR, es-ES)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("language", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(settings.Languages, func(l settings.Language, _ int) string { return string(l) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.SettingsLanguage, rootCmd.PersistentFlags().Lookup("language")))

	rootCmd.Flags().StringP("kind", "k", "", "Filter selected on start: movie, tv, anime or multi")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("kind", completeKinds))
	lo.Must0(viper.BindPFlag(key.SearchDefaultKind, rootCmd.Flags().Lookup("kind")))

	rootCmd.Flags().StringP("theme", "T", "", "Color theme: dark or light")
	lo.Must0(viper.BindPFlag(key.SettingsTheme, rootCmd.Flags().Lookup("theme")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context())
	})
}

// rootCmd opens the interactive browser.
var rootCmd = &cobra.Command{
	Use:   constant.Cinebox,
	Short: "Browse movies, series and anime from your terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse movies, series and anime from your terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.SetContext(cmd.Context())
			versionCmd.Run(versionCmd, args)
			return
		}

		holder := settings.Load()
		client := tmdb.NewFromConfig(string(holder.Current().Language))
		if !client.Authorized() {
			handleErr(tmdb.ErrMissingAPIKey)
		}

		kind, err := media.ParseKind(viper.GetString(key.SearchDefaultKind))
		handleErr(err)

		options := &tui.Options{
			CatalogFor: func(language string) tui.Catalog {
				return client.WithLanguage(language)
			},
			Settings:     holder,
			Kind:         kind,
			Debounce:     time.Duration(viper.GetInt(key.SearchDebounceMs)) * time.Millisecond,
			ImageBaseURL: viper.GetString(key.TMDBImageBaseURL),
		}

		if viper.GetBool(key.FavoritesPersist) {
			options.Store = favorites.Default()
		}

		handleErr(tui.Run(cmd.Context(), options))
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		stop()
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
