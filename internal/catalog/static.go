package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

func isLocalFile(source string) bool {
	return !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://")
}

// rawGtfsData reads a GTFS zip from disk or downloads it.
func rawGtfsData(ctx context.Context, source string) ([]byte, error) {
	if isLocalFile(source) {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
		return b, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("error building GTFS request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error downloading GTFS data: %w", err)
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading GTFS data: status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading GTFS data: %w", err)
	}
	return b, nil
}
