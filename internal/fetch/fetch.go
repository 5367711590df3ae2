// Package fetch retrieves published sheet CSV exports over plain HTTP GET,
// walking an ordered list of candidate URLs per sheet.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"sheetboard/internal/csvtext"
)

const docsBase = "https://docs.google.com/spreadsheets/d/"

// SheetRef identifies one sheet within the spreadsheet: its name, plus an
// optional numeric grid id that unlocks two more candidate URLs.
type SheetRef struct {
	Name string
	GID  string
}

// Result is a successful fetch: the raw CSV body and the candidate URL that
// produced it.
type Result struct {
	Body      string
	SourceURL string
}

type Fetcher struct {
	baseURL string
	client  *http.Client
}

func NewFetcher(spreadsheetID string) *Fetcher {
	return &Fetcher{
		baseURL: docsBase + url.PathEscape(spreadsheetID),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// CandidateURLs builds the ordered export URLs for a sheet: the tabular
// query endpoint by name, the direct export endpoint by name, then the same
// two shapes keyed by grid id when one is known.
func (f *Fetcher) CandidateURLs(ref SheetRef) []string {
	name := url.QueryEscape(ref.Name)
	candidates := []string{
		f.baseURL + "/gviz/tq?tqx=out:csv&sheet=" + name,
		f.baseURL + "/export?format=csv&sheet=" + name,
	}
	if ref.GID != "" {
		gid := url.QueryEscape(ref.GID)
		candidates = append(candidates,
			f.baseURL+"/export?format=csv&gid="+gid,
			f.baseURL+"/gviz/tq?tqx=out:csv&gid="+gid,
		)
	}
	return candidates
}

// Fetch tries each candidate URL in order and returns the first success.
// A failed candidate (network error or non-2xx status) is logged and the
// next one is tried; one pass only, no retry or backoff. When every
// candidate fails, the last failure is surfaced.
func (f *Fetcher) Fetch(ctx context.Context, ref SheetRef) (Result, error) {
	candidates := f.CandidateURLs(ref)

	var lastErr error
	for i, candidate := range candidates {
		body, err := f.fetchOne(ctx, candidate)
		if err != nil {
			log.Debug().
				Err(err).
				Str("sheet", ref.Name).
				Int("candidate", i+1).
				Int("candidates", len(candidates)).
				Msg("Candidate URL failed")
			lastErr = err
			continue
		}

		log.Debug().
			Str("sheet", ref.Name).
			Str("url", candidate).
			Int("bytes", len(body)).
			Msg("Fetched sheet CSV")
		return Result{Body: body, SourceURL: candidate}, nil
	}

	return Result{}, fmt.Errorf("all %d candidate URLs failed for sheet %q: %w",
		len(candidates), ref.Name, lastErr)
}

// Load fetches and parses a sheet in one step, returning the grid and the
// URL that served it.
func (f *Fetcher) Load(ctx context.Context, ref SheetRef) ([][]string, string, error) {
	res, err := f.Fetch(ctx, ref)
	if err != nil {
		return nil, "", err
	}
	return csvtext.Parse(res.Body), res.SourceURL, nil
}

func (f *Fetcher) fetchOne(ctx context.Context, candidate string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidate, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("request failed with status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(body)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return string(body), nil
}
