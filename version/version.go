package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/network"
	"github.com/cinebox-cli/cinebox/util"
	"github.com/cinebox-cli/cinebox/where"
	"github.com/metafates/gache"
)

var releasesURL = "https://api.github.com/repos/cinebox-cli/cinebox/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   48 * time.Hour,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the newest released version without the v prefix.
// The answer is cached for two days.
func Latest(ctx context.Context) (string, error) {
	cached, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && cached != "" {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("releases: status %d", resp.StatusCode)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version := strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(version)
	return version, nil
}
