package inline

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cinebox-cli/cinebox/media"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Catalog is the part of the metadata client a non-interactive search needs.
type Catalog interface {
	Search(ctx context.Context, query string, kind media.Kind) ([]media.Item, error)
	Trending(ctx context.Context, kind media.Kind) ([]media.Item, error)
	ListByGenre(ctx context.Context, genreID int, kind media.Kind) ([]media.Item, error)
	Details(ctx context.Context, item media.Item) (media.Details, error)
}

// Picker chooses a single item out of the results.
type Picker func([]media.Item) mo.Option[media.Item]

type Options struct {
	Out     io.Writer
	Catalog Catalog
	Query   string
	Kind    media.Kind
	// GenreID lists a genre instead of searching when non zero.
	GenreID int
	// Limit caps the number of results, zero keeps them all.
	Limit  int
	Picker mo.Option[Picker]
	// Details fetches the extended record of every selected item.
	Details      bool
	Json         bool
	ImageBaseURL string
}

// ParsePicker understands first, last, exact and index pickers.
// value is the title for exact and the zero based position for index.
func ParsePicker(kind, value string) (Picker, error) {
	switch kind {
	case "first":
		return func(items []media.Item) mo.Option[media.Item] {
			if len(items) == 0 {
				return mo.None[media.Item]()
			}
			return mo.Some(items[0])
		}, nil
	case "last":
		return func(items []media.Item) mo.Option[media.Item] {
			if len(items) == 0 {
				return mo.None[media.Item]()
			}
			return mo.Some(items[len(items)-1])
		}, nil
	case "exact":
		return func(items []media.Item) mo.Option[media.Item] {
			item, ok := lo.Find(items, func(item media.Item) bool {
				return strings.EqualFold(item.Title, value)
			})
			return mo.TupleToOption(item, ok)
		}, nil
	case "index":
		index, err := strconv.Atoi(value)
		if err != nil || index < 0 {
			return nil, fmt.Errorf("invalid index: %s", value)
		}
		return func(items []media.Item) mo.Option[media.Item] {
			if index >= len(items) {
				return mo.None[media.Item]()
			}
			return mo.Some(items[index])
		}, nil
	default:
		return nil, fmt.Errorf("unknown picker %q, expected first, last, exact or index", kind)
	}
}

// ParsePickerSpec splits "kind" or "kind:value", e.g. "index:2".
func ParsePickerSpec(spec string) (Picker, error) {
	kind, value, _ := strings.Cut(spec, ":")
	return ParsePicker(kind, value)
}
