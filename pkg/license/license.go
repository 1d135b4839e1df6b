// Package license fetches SPDX license texts.
package license

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/toni500git/ulpm/pkg/manifest"
	"github.com/toni500git/ulpm/pkg/model"
)

// FileName is where the license text is written.
const FileName = "LICENSE.txt"

// DefaultBaseURL serves the plain text of every SPDX license as <id>.txt.
const DefaultBaseURL = "https://raw.githubusercontent.com/spdx/license-list-data/master/text/"

const maxLicenseSize = 1 << 20

// Client downloads license texts.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Logger  *slog.Logger
}

// NewClient returns a client for the SPDX text mirror.
func NewClient(logger *slog.Logger) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		Logger:  logger,
	}
}

// Downloadable reports whether id has an SPDX text to fetch.
func Downloadable(id string) bool {
	return id != "" && id != model.LicenseNone && id != model.LicenseCustom
}

// Fetch returns the text of license id.
func (c *Client) Fetch(ctx context.Context, id string) ([]byte, error) {
	if !Downloadable(id) {
		return nil, fmt.Errorf("license %q has no text to download", id)
	}
	url := strings.TrimSuffix(c.BaseURL, "/") + "/" + id + ".txt"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	client := c.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download license %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download license %s: server returned %s", id, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLicenseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to download license %s: %w", id, err)
	}
	return data, nil
}

// Install writes the text of id to dir/LICENSE.txt. It reports whether the
// file was written: None and Custom are never fetched, and an existing file
// is only replaced when force is set.
func (c *Client) Install(ctx context.Context, dir, id string, force bool) (bool, error) {
	if !Downloadable(id) {
		return false, nil
	}
	path := filepath.Join(dir, FileName)
	if !force {
		if _, err := os.Stat(path); err == nil {
			c.logger().Warn("License file already exists, skipping download", "file", FileName)
			return false, nil
		}
	}

	data, err := c.Fetch(ctx, id)
	if err != nil {
		return false, err
	}
	if err := manifest.WriteFile(path, data); err != nil {
		return false, err
	}
	c.logger().Debug("Downloaded license", "license", id, "bytes", len(data))
	return true, nil
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
