package cmd

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/cinebox-cli/cinebox/color"
	"github.com/cinebox-cli/cinebox/constant"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/cinebox-cli/cinebox/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

type buildInfo struct {
	App      string `json:"app"`
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"built_at"`
	BuiltBy  string `json:"built_by"`
	Platform string `json:"platform"`
	Go       string `json:"go"`
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"bold":   style.Bold,
	"accent": style.Fg(color.Purple),
}).Parse(`{{ accent "▇▇▇" }} {{ bold .App }} {{ accent .Version }}

  {{ faint "Revision" }}   {{ .Revision }}
  {{ faint "Built at" }}   {{ .BuiltAt }}
  {{ faint "Built by" }}   {{ .BuiltBy }}
  {{ faint "Platform" }}   {{ .Platform }}
  {{ faint "Go" }}         {{ .Go }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := buildInfo{
			App:      constant.Cinebox,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Platform: runtime.GOOS + "/" + runtime.GOARCH,
			Go:       runtime.Version(),
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
		version.Notify(cmd.Context())
	},
}
