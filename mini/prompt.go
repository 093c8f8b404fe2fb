package mini

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cinebox-cli/cinebox/color"
	"github.com/cinebox-cli/cinebox/icon"
	"github.com/cinebox-cli/cinebox/style"
	"github.com/cinebox-cli/cinebox/util"
	"github.com/samber/lo"
)

type prompter interface {
	Input(message string) (string, error)
	Select(message string, options []string) (int, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: message}, &answer)
	return answer, err
}

func (surveyPrompter) Select(message string, options []string) (int, error) {
	var index int
	err := survey.AskOne(&survey.Select{
		Message:  message,
		Options:  options,
		PageSize: 15,
	}, &index)
	return index, err
}

// bind is a menu entry that is not one of the listed items.
type bind struct {
	label string
}

func (b *bind) String() string {
	return b.label
}

var (
	back      = &bind{label: "← Back"}
	search    = &bind{label: "Search again"}
	quit      = &bind{label: "Quit"}
	addFav    = &bind{label: "Add to favorites"}
	removeFav = &bind{label: "Remove from favorites"}
	openPage  = &bind{label: "Open TMDB page"}
	trailer   = &bind{label: "Watch trailer"}
)

// menu asks to pick one of items or one of binds. Exactly one of the
// returned bind and index is meaningful, index is -1 when a bind was chosen.
func (m *mini) menu(message string, items []string, binds ...*bind) (*bind, int, error) {
	options := lo.Map(items, func(item string, _ int) string {
		return util.Ellipsis(item, truncateAt-4)
	})
	options = append(options, lo.Map(binds, func(b *bind, _ int) string {
		return style.Faint(b.label)
	})...)

	if len(options) == 0 {
		return nil, -1, errors.New("nothing to choose from")
	}

	index, err := m.prompt.Select(message, options)
	if err != nil {
		return nil, -1, err
	}
	if index < 0 || index >= len(options) {
		return nil, -1, fmt.Errorf("invalid choice %d", index)
	}

	if index >= len(items) {
		return binds[index-len(items)], -1, nil
	}
	return nil, index, nil
}

func (m *mini) title(text string) {
	fmt.Fprintln(m.out, style.New().Bold(true).Foreground(color.Purple).Render(text))
}

func (m *mini) fail(text string) {
	fmt.Fprintf(m.out, "%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), strings.TrimSpace(text))
}

func (m *mini) success(text string) {
	fmt.Fprintf(m.out, "%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), text)
}

func progress(text string) (erase func()) {
	return util.PrintErasable(fmt.Sprintf("%s %s", icon.Get(icon.Progress), text))
}
