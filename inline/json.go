package inline

import (
	"encoding/json"
	"io"

	"github.com/cinebox-cli/cinebox/media"
)

// Entry is one result of a non-interactive search.
type Entry struct {
	media.Item
	PosterURL string         `json:"poster_url,omitempty"`
	PageURL   string         `json:"page_url"`
	Details   *media.Details `json:"details,omitempty"`
}

// Output is the document written by --json.
type Output struct {
	Query   string  `json:"query"`
	Kind    string  `json:"kind"`
	GenreID int     `json:"genre_id,omitempty"`
	Result  []Entry `json:"result"`
}

func writeJson(out io.Writer, output *Output) error {
	if output.Result == nil {
		output.Result = []Entry{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
