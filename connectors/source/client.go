package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	ccsv "sales-stats/connectors/csv"
	"sales-stats/domain/sales"
)

// Package source fetches the remote sales dataset. It is a thin wrapper over
// http.Client; a configured token turns the client into an oauth2 transport
// so protected dataset hosts work without any other change.

type Client struct {
	c *http.Client
}

func New(c *http.Client, token string) *Client {
	if c == nil {
		c = &http.Client{Timeout: 30 * time.Second}
	}
	if token != "" {
		c = &http.Client{
			Timeout: c.Timeout,
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
				Base:   c.Transport,
			},
		}
	}
	return &Client{c: c}
}

// FetchDataset downloads and parses the CSV dataset at rawURL.
func (sc *Client) FetchDataset(ctx context.Context, rawURL string) ([]sales.Record, error) {
	slog.Info("phase.dataset.fetch.start", "url", rawURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := sc.c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dataset fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("dataset fetch %s returned %d: %s", rawURL, resp.StatusCode, string(b))
	}

	records, err := ccsv.ParseSales(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("dataset parse %s: %w", rawURL, err)
	}
	slog.Info("phase.dataset.fetch.done", "url", rawURL, "records", len(records))
	return records, nil
}
