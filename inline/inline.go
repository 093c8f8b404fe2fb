// Package inline runs a search without the interface and prints the results,
// for use from scripts.
package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cinebox-cli/cinebox/log"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/cinebox-cli/cinebox/query"
	"github.com/samber/lo"
)

// Run fetches, picks, optionally enriches and prints the results.
func Run(ctx context.Context, options *Options) error {
	if options.Catalog == nil {
		return errors.New("no catalog configured")
	}
	if options.Out == nil {
		options.Out = os.Stdout
	}

	items, err := fetch(ctx, options)
	if err != nil {
		return err
	}

	if options.Limit > 0 && len(items) > options.Limit {
		items = items[:options.Limit]
	}

	if picker, ok := options.Picker.Get(); ok {
		if item, ok := picker(items).Get(); ok {
			items = []media.Item{item}
		} else {
			items = nil
		}
	}

	entries := lo.Map(items, func(item media.Item, _ int) Entry {
		return Entry{
			Item:      item,
			PosterURL: item.PosterURL(options.ImageBaseURL),
			PageURL:   item.PageURL(),
		}
	})

	if options.Details {
		for i := range entries {
			details, err := options.Catalog.Details(ctx, entries[i].Item)
			if err != nil {
				return fmt.Errorf("details of %d: %w", entries[i].ID, err)
			}
			entries[i].Details = &details
		}
	}

	if options.Json {
		return writeJson(options.Out, &Output{
			Query:   options.Query,
			Kind:    options.Kind.String(),
			GenreID: options.GenreID,
			Result:  entries,
		})
	}

	return writeText(options.Out, entries)
}

func fetch(ctx context.Context, options *Options) ([]media.Item, error) {
	if options.GenreID != 0 {
		return options.Catalog.ListByGenre(ctx, options.GenreID, options.Kind)
	}

	q := strings.TrimSpace(options.Query)
	if q == "" {
		return options.Catalog.Trending(ctx, options.Kind)
	}

	if err := query.Remember(q, 1); err != nil {
		log.Warnf("remember query: %s", err)
	}

	return options.Catalog.Search(ctx, q, options.Kind)
}

func writeText(out io.Writer, entries []Entry) error {
	for _, entry := range entries {
		title := entry.Title
		if year := entry.Year(); year != "" {
			title += " (" + year + ")"
		}

		if _, err := fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", entry.ID, entry.Kind, entry.Rating(), title); err != nil {
			return err
		}

		if entry.Details != nil && entry.Details.TrailerURL() != "" {
			if _, err := fmt.Fprintf(out, "\ttrailer: %s\n", entry.Details.TrailerURL()); err != nil {
				return err
			}
		}
	}

	return nil
}
