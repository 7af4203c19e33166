package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/fraudguard/internal/fetch"
	"github.com/jonathan/fraudguard/internal/types"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
	// ErrEmptyPosting is returned when a fetched page yields no usable text.
	ErrEmptyPosting = fmt.Errorf("no posting text found")
)

// IngestFromURL fetches a job posting page and builds a record from it:
// the page title becomes the posting title and the extracted main text the
// description. Structural fields stay at their zero values, which the
// scorer treats as missing.
func IngestFromURL(ctx context.Context, urlStr string) (types.JobRecord, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return types.JobRecord{}, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	title, err := fetch.ExtractTitle(result.HTML)
	if err != nil {
		return types.JobRecord{}, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	text, err := fetch.ExtractMainText(result.HTML)
	if err != nil {
		return types.JobRecord{}, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if text == "" {
		return types.JobRecord{}, fmt.Errorf("%w: %s", ErrEmptyPosting, urlStr)
	}

	return types.JobRecord{
		Title:       title,
		Description: text,
	}, nil
}
