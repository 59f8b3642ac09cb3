// Package resource resolves dictionary source locations into readable
// streams. Locations are plain filesystem paths, file:// URLs, or http(s)
// URLs; dictionaries are expected to be local or bundled resources, so the
// HTTP path exists for the occasional remotely hosted lexicon.
package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// httpClient is shared by all HTTP opens. The timeout covers connection and
// headers; body reads are bounded by the caller's context.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// Open resolves location into a stream. The caller closes it.
func Open(ctx context.Context, location string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return openHTTP(ctx, location)
	case strings.HasPrefix(location, "file://"):
		u, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("parse location %s: %w", location, err)
		}
		return os.Open(u.Path)
	default:
		return os.Open(location)
	}
}

func openHTTP(ctx context.Context, location string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", location, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", location, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: unexpected status %s", location, resp.Status)
	}
	return resp.Body, nil
}
