package version

import (
	"context"
	"fmt"

	"github.com/cinebox-cli/cinebox/color"
	"github.com/cinebox-cli/cinebox/constant"
	"github.com/cinebox-cli/cinebox/icon"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/cinebox-cli/cinebox/util"
	"github.com/spf13/viper"
)

// Notify prints a banner when a newer release than the running one exists.
// Lookup failures are silent.
func Notify(ctx context.Context) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a new version...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if cmp, err := Compare(latest, constant.Version); err != nil || cmp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/cinebox-cli/cinebox/releases/tag/v"+latest),
	)
}
