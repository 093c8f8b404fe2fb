package tmdb

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/cinebox-cli/cinebox/log"
	"github.com/cinebox-cli/cinebox/media"
	"github.com/samber/lo"
)

// Search looks query up among titles of the given kind. Anime searches
// series and keeps Japanese animation only. Multi drops people.
func (c *Client) Search(ctx context.Context, query string, kind media.Kind) ([]media.Item, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.Trending(ctx, kind)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", strconv.FormatBool(c.includeAdult))

	return c.items(ctx, c.requestPath("/search/"+kind.Endpoint(), params), kind)
}

// Trending is the default listing shown for an empty query.
func (c *Client) Trending(ctx context.Context, kind media.Kind) ([]media.Item, error) {
	switch kind {
	case media.Anime:
		return c.discover(ctx, kind, nil)
	case media.Multi:
		return c.items(ctx, c.requestPath("/trending/all/week", nil), kind)
	default:
		return c.items(ctx, c.requestPath("/trending/"+kind.Endpoint()+"/week", nil), kind)
	}
}

// ListByGenre lists the most popular titles of a genre. Multi falls back to movies.
func (c *Client) ListByGenre(ctx context.Context, genreID int, kind media.Kind) ([]media.Item, error) {
	if kind == media.Multi {
		kind = media.Movie
	}
	return c.discover(ctx, kind, []int{genreID})
}

func (c *Client) discover(ctx context.Context, kind media.Kind, genres []int) ([]media.Item, error) {
	params := url.Values{}
	params.Set("sort_by", "popularity.desc")
	params.Set("include_adult", strconv.FormatBool(c.includeAdult))

	if kind == media.Anime {
		genres = lo.Uniq(append([]int{animationGenre}, genres...))
		params.Set("with_original_language", "ja")
	}

	if len(genres) > 0 {
		ids := lo.Map(genres, func(id, _ int) string { return strconv.Itoa(id) })
		params.Set("with_genres", strings.Join(ids, ","))
	}

	return c.items(ctx, c.requestPath("/discover/"+kind.Endpoint(), params), kind)
}

// items fetches a result page and normalizes it for kind.
func (c *Client) items(ctx context.Context, requestPath string, kind media.Kind) ([]media.Item, error) {
	if c.cache != nil {
		if cached, ok := c.cache.pages.Get(requestPath).Get(); ok {
			return cached, nil
		}
	}

	var response page
	if err := c.get(ctx, requestPath, &response); err != nil {
		return nil, err
	}

	results := response.Results
	if kind == media.Multi {
		results = lo.Filter(results, func(r result, _ int) bool { return r.MediaType != "person" })
	}
	if kind == media.Anime {
		results = lo.Filter(results, func(r result, _ int) bool { return r.isAnime() })
	}

	items := lo.Map(results, func(r result, _ int) media.Item { return r.item(kind) })
	if c.limit > 0 && len(items) > c.limit {
		items = items[:c.limit]
	}

	log.With(log.Fields{"path": requestPath, "results": len(items)}).Info("fetched")

	if c.cache != nil {
		if err := c.cache.pages.Set(requestPath, items); err != nil {
			log.Warnf("page cache: %s", err)
		}
	}

	return items, nil
}

// Genres lists the genres available for kind. Anime uses the series list.
func (c *Client) Genres(ctx context.Context, kind media.Kind) ([]media.Genre, error) {
	endpoint := kind.Endpoint()
	if kind == media.Multi {
		endpoint = "movie"
	}

	requestPath := c.requestPath("/genre/"+endpoint+"/list", nil)
	if c.cache != nil {
		if cached, ok := c.cache.genres.Get(requestPath).Get(); ok {
			return cached, nil
		}
	}

	var response genreList
	if err := c.get(ctx, requestPath, &response); err != nil {
		return nil, err
	}

	if kind == media.Anime {
		response.Genres = lo.Reject(response.Genres, func(g media.Genre, _ int) bool { return g.ID == animationGenre })
	}

	if c.cache != nil {
		if err := c.cache.genres.Set(requestPath, response.Genres); err != nil {
			log.Warnf("genre cache: %s", err)
		}
	}

	return response.Genres, nil
}

// Details fetches the extended record of item with credits and videos.
func (c *Client) Details(ctx context.Context, item media.Item) (media.Details, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,videos")
	requestPath := c.requestPath("/"+item.Kind.Endpoint()+"/"+strconv.Itoa(item.ID), params)

	if c.cache != nil {
		if cached, ok := c.cache.details.Get(requestPath).Get(); ok {
			return cached, nil
		}
	}

	var response details
	if err := c.get(ctx, requestPath, &response); err != nil {
		return media.Details{}, err
	}

	out := response.normalize(item.Kind)
	if c.cache != nil {
		if err := c.cache.details.Set(requestPath, out); err != nil {
			log.Warnf("details cache: %s", err)
		}
	}

	return out, nil
}
