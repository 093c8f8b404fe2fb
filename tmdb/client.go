// Package tmdb is a client for The Movie Database v3 REST API.
//
// Responses are normalized into media records and, unless disabled, kept in
// on-disk caches keyed by request path.
package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cinebox-cli/cinebox/auth"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/log"
	"github.com/cinebox-cli/cinebox/network"
	"github.com/cinebox-cli/cinebox/where"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned by every request when no token is configured.
var ErrMissingAPIKey = errors.New("TMDB API key is not set, run \"cinebox auth set\" or set CINEBOX_TMDB_API_KEY")

// StatusError is a non-200 answer from the API.
type StatusError struct {
	Path    string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tmdb: %s: status %d", e.Path, e.Code)
	}
	return fmt.Sprintf("tmdb: %s: status %d: %s", e.Path, e.Code, e.Message)
}

// Options configures a Client. Zero values fall back to sensible defaults.
type Options struct {
	BaseURL      string
	APIKey       string
	Language     string
	IncludeAdult bool
	Limit        int
	Timeout      time.Duration
	HTTPClient   *http.Client
	// CacheDir enables the disk caches when non empty.
	CacheDir string
}

// Client issues requests against the API. It is safe for concurrent use.
type Client struct {
	baseURL      string
	apiKey       string
	language     string
	includeAdult bool
	limit        int
	timeout      time.Duration
	http         *http.Client
	cache        *caches
}

// New builds a client from explicit options.
func New(options Options) *Client {
	c := &Client{
		baseURL:      strings.TrimSuffix(options.BaseURL, "/"),
		apiKey:       options.APIKey,
		language:     options.Language,
		includeAdult: options.IncludeAdult,
		limit:        options.Limit,
		timeout:      options.Timeout,
		http:         options.HTTPClient,
	}

	if c.baseURL == "" {
		c.baseURL = "https://api.themoviedb.org/3"
	}
	if c.language == "" {
		c.language = "en-US"
	}
	if c.timeout <= 0 {
		c.timeout = 15 * time.Second
	}
	if c.http == nil {
		c.http = network.Client
	}
	if options.CacheDir != "" {
		c.cache = newCaches(options.CacheDir)
	}

	return c
}

// NewFromConfig reads the tmdb.* keys. The token comes from the config or
// environment first and from the system keyring otherwise.
func NewFromConfig(language string) *Client {
	apiKey := viper.GetString(key.TMDBAPIKey)
	if apiKey == "" {
		if stored, err := auth.GetAPIKey(); err == nil {
			apiKey = stored
		} else if !errors.Is(err, auth.ErrNoToken) {
			log.Warnf("read token from keyring: %s", err)
		}
	}

	options := Options{
		BaseURL:      viper.GetString(key.TMDBBaseURL),
		APIKey:       apiKey,
		Language:     language,
		IncludeAdult: viper.GetBool(key.TMDBIncludeAdult),
		Limit:        viper.GetInt(key.TMDBResultLimit),
		Timeout:      time.Duration(viper.GetInt(key.TMDBTimeout)) * time.Second,
	}

	if viper.GetBool(key.CacheEnable) {
		options.CacheDir = where.Cache()
	}

	return New(options)
}

// Language is the metadata language sent with each request.
func (c *Client) Language() string {
	return c.language
}

// Authorized reports whether a token is configured.
func (c *Client) Authorized() bool {
	return c.apiKey != ""
}

// WithLanguage returns a copy of the client speaking another language.
// Caches are shared since their keys include the language.
func (c *Client) WithLanguage(language string) *Client {
	clone := *c
	clone.language = language
	return &clone
}

// bearer reports whether the key is a v4 read access token rather than a v3 api key.
func (c *Client) bearer() bool {
	return strings.HasPrefix(c.apiKey, "eyJ")
}

// requestPath builds path?query with the language and without credentials.
// It doubles as the cache key.
func (c *Client) requestPath(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("language", c.language)
	return path + "?" + params.Encode()
}

// get decodes the JSON answer for requestPath into v.
func (c *Client) get(ctx context.Context, requestPath string, v any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	if c.cache != nil {
		if failed, _ := c.cache.fails.Get(requestPath).Get(); failed {
			return fmt.Errorf("tmdb: %s: failed recently, try again in a minute", requestPath)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + requestPath
	if !c.bearer() {
		target += "&api_key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("tmdb: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.bearer() {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	logger := log.With(log.Fields{"path": requestPath})
	logger.Debug("sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		// cancellation means a newer request took over, not that the API is down
		if ctx.Err() == nil || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.markFailed(requestPath)
		}
		return fmt.Errorf("tmdb: %s: %w", requestPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body errorBody
		_ = json.NewDecoder(resp.Body).Decode(&body)
		logger.WithField("status", resp.StatusCode).Error(body.StatusMessage)

		if resp.StatusCode >= http.StatusInternalServerError {
			c.markFailed(requestPath)
		}

		return &StatusError{Path: requestPath, Code: resp.StatusCode, Message: body.StatusMessage}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("tmdb: decode %s: %w", requestPath, err)
	}

	return nil
}

func (c *Client) markFailed(requestPath string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.fails.Set(requestPath, true); err != nil {
		log.Warnf("fail cache: %s", err)
	}
}
