package worldbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	drepo "EconWatch/internal/domain/repository"
	"EconWatch/pkg/cache"
	xhttp "EconWatch/pkg/http"
	xlogger "EconWatch/pkg/logger"
)

// ErrTransport marks network-level fetch failures (DNS, refused, timeout).
// Not retried; the request cycle fails as a whole.
var ErrTransport = errors.New("worldbank: transport failure")

// Client implements a SeriesSource backed by the World Bank Open Data API.
//
// Results are memoized forever by the exact request tuple: at most one
// outbound call per unique (indicator, countries, year range). "No data"
// outcomes are memoized too, since the source answer for a fixed tuple is
// stable within a process lifetime.
type Client struct {
	baseURL string
	perPage int
	client  *xhttp.Client
	memo    cache.Service
	metrics drepo.Metrics
	logger  *xlogger.Logger
}

// New creates a World Bank series source.
func New(baseURL string, perPage int, httpc *xhttp.Client, memo cache.Service, metrics drepo.Metrics) *Client {
	if perPage <= 0 {
		perPage = 1000
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		perPage: perPage,
		client:  httpc,
		memo:    memo,
		metrics: metrics,
	}
}

// SetLogger attaches a logger for fetch diagnostics.
func (c *Client) SetLogger(l *xlogger.Logger) { c.logger = l }

// Fetch returns the raw records for one indicator and country set.
// A (nil, nil) return is the NoData outcome: empty payload, wrong envelope
// shape, or a non-success status. Only transport failures return an error.
func (c *Client) Fetch(ctx context.Context, indicator string, countries []string, yearStart, yearEnd int) ([]drepo.SourceRecord, error) {
	if len(countries) == 0 {
		return nil, fmt.Errorf("worldbank: empty country selection")
	}

	key := memoKey(indicator, countries, yearStart, yearEnd)
	if cached, err := c.memo.Get(ctx, key); err == nil {
		c.record(func(m drepo.Metrics) { m.RecordCacheLookup("hit") })
		var recs []drepo.SourceRecord
		if err := json.Unmarshal(cached, &recs); err != nil {
			return nil, fmt.Errorf("worldbank: corrupt memo entry: %w", err)
		}
		return recs, nil
	}
	c.record(func(m drepo.Metrics) { m.RecordCacheLookup("miss") })

	url := fmt.Sprintf("%s/country/%s/indicator/%s", c.baseURL, strings.Join(countries, ";"), indicator)

	start := time.Now()
	status, body, err := c.client.SendForBytes(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    url,
		QueryParams: map[string][]string{
			"format":   {"json"},
			"per_page": {strconv.Itoa(c.perPage)},
			"date":     {fmt.Sprintf("%d:%d", yearStart, yearEnd)},
		},
	})
	c.record(func(m drepo.Metrics) { m.RecordFetchLatency(indicator, time.Since(start).Seconds()) })
	if err != nil {
		c.record(func(m drepo.Metrics) { m.RecordFetch(indicator, "error") })
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	recs, ok := decodeEnvelope(status, body)
	if !ok {
		c.record(func(m drepo.Metrics) { m.RecordFetch(indicator, "nodata") })
		if c.logger != nil {
			c.logger.Debug("worldbank: no data",
				xlogger.String("indicator", indicator),
				xlogger.Int("status", status),
			)
		}
		_ = c.memo.Set(ctx, key, []byte("null"))
		return nil, nil
	}

	c.record(func(m drepo.Metrics) { m.RecordFetch(indicator, "ok") })

	stored, err := json.Marshal(recs)
	if err == nil {
		_ = c.memo.Set(ctx, key, stored)
	}
	return recs, nil
}

// decodeEnvelope unpacks the source's two-element [metadata, records]
// response. Any shape deviation, a non-2xx status, or a null records
// element reads as "no data".
func decodeEnvelope(status int, body []byte) ([]drepo.SourceRecord, bool) {
	if status < 200 || status >= 300 {
		return nil, false
	}
	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false
	}
	if len(envelope) < 2 {
		return nil, false
	}
	var recs []drepo.SourceRecord
	if err := json.Unmarshal(envelope[1], &recs); err != nil {
		return nil, false
	}
	if recs == nil {
		return nil, false
	}
	return recs, true
}

func memoKey(indicator string, countries []string, yearStart, yearEnd int) string {
	return fmt.Sprintf("series:%s:%s:%d-%d", indicator, strings.Join(countries, ";"), yearStart, yearEnd)
}

func (c *Client) record(fn func(drepo.Metrics)) {
	if c.metrics != nil {
		fn(c.metrics)
	}
}

var _ drepo.SeriesSource = (*Client)(nil)
