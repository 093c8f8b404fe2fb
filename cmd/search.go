package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/cinebox-cli/cinebox/color"
	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/inline"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/query"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/cinebox-cli/cinebox/tmdb"
	"github.com/invopop/jsonschema"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringP("query", "q", "", "Search query, empty lists trending titles")
	searchCmd.Flags().StringP("kind", "k", "movie", "What to search: movie, tv, anime or multi")
	searchCmd.Flags().StringP("genre", "g", "", "List a genre instead of searching, by id or name")
	searchCmd.Flags().IntP("limit", "l", 0, "Keep at most this many results")
	searchCmd.Flags().StringP("pick", "p", "", "Select one result: first, last, index:N or exact:TITLE")
	searchCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	searchCmd.Flags().BoolP("details", "d", false, "Include runtime, cast and trailer of the selected results")
	searchCmd.Flags().StringP("output", "o", "", "Write the output to a file instead of stdout")
	searchCmd.MarkFlagsMutuallyExclusive("query", "genre")

	lo.Must0(searchCmd.RegisterFlagCompletionFunc("kind", completeKinds))
	lo.Must0(searchCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(searchCmd.RegisterFlagCompletionFunc("pick", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"first", "last", "index:", "exact:"}, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
	}))
}

// searchCmd is the scriptable counterpart of the Home screen.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search titles without the interactive interface",
	Long: `Search titles, list trending ones or list a genre, and print the results.

Pickers:
  first       - first result
  last        - last result
  index:N     - result at position N (starting from 0)
  exact:TITLE - result whose title matches, ignoring case`,
	Example: `  cinebox search -q "spirited away" -k anime --pick first --details
  cinebox search -k tv --genre comedy --json --limit 5`,
	Run: func(cmd *cobra.Command, args []string) {
		kind, err := media.ParseKind(lo.Must(cmd.Flags().GetString("kind")))
		handleErr(err)

		client := tmdb.NewFromConfig(viper.GetString(key.SettingsLanguage))

		var genreID int
		if genre := lo.Must(cmd.Flags().GetString("genre")); genre != "" {
			genreID, err = resolveGenre(cmd.Context(), client, kind, genre)
			handleErr(err)
		}

		picker := mo.None[inline.Picker]()
		if spec := lo.Must(cmd.Flags().GetString("pick")); spec != "" {
			fn, err := inline.ParsePickerSpec(spec)
			handleErr(err)
			picker = mo.Some(fn)
		}

		output := lo.Must(cmd.Flags().GetString("output"))

		var buf bytes.Buffer
		var out io.Writer = os.Stdout
		if output != "" {
			out = &buf
		}

		options := &inline.Options{
			Out:          out,
			Catalog:      client,
			Query:        lo.Must(cmd.Flags().GetString("query")),
			Kind:         kind,
			GenreID:      genreID,
			Limit:        lo.Must(cmd.Flags().GetInt("limit")),
			Picker:       picker,
			Details:      lo.Must(cmd.Flags().GetBool("details")),
			Json:         lo.Must(cmd.Flags().GetBool("json")),
			ImageBaseURL: viper.GetString(key.TMDBImageBaseURL),
		}

		handleErr(inline.Run(cmd.Context(), options))

		if output != "" {
			handleErr(filesystem.WriteAtomic(output, buf.Bytes()))
		}
	},
}

// genreLister is the part of the client genre lookup needs.
type genreLister interface {
	Genres(ctx context.Context, kind media.Kind) ([]media.Genre, error)
}

// resolveGenre accepts a genre id or a genre name in the configured language.
func resolveGenre(ctx context.Context, lister genreLister, kind media.Kind, value string) (int, error) {
	if id, err := strconv.Atoi(value); err == nil {
		return id, nil
	}

	genres, err := lister.Genres(ctx, kind)
	if err != nil {
		return 0, err
	}
	if len(genres) == 0 {
		return 0, fmt.Errorf("no genres available for %s", kind)
	}

	if genre, ok := lo.Find(genres, func(g media.Genre) bool { return strings.EqualFold(g.Name, value) }); ok {
		return genre.ID, nil
	}

	needle := strings.ToLower(value)
	closest := lo.MinBy(genres, func(a, b media.Genre) bool {
		return levenshtein.Distance(needle, strings.ToLower(a.Name)) < levenshtein.Distance(needle, strings.ToLower(b.Name))
	})

	return 0, fmt.Errorf(
		"unknown genre %s, did you mean %s?",
		style.Fg(color.Red)(value),
		style.Fg(color.Yellow)(closest.Name),
	)
}

func init() {
	searchCmd.AddCommand(searchSchemaCmd)
}

// searchSchemaCmd prints the JSON schema of `search --json`.
var searchSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the search output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			switch name := t.Name(); strings.ToLower(name) {
			case "item", "details", "entry", "output":
				return t.PkgPath()[strings.LastIndex(t.PkgPath(), "/")+1:] + "." + name
			default:
				return name
			}
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector.Reflect(&inline.Output{})))
	},
}
