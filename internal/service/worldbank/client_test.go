package worldbank

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"sync/atomic"
	"testing"

	"EconWatch/pkg/cache"
	xhttp "EconWatch/pkg/http"

	"github.com/maxcnunes/httpfake"
)

// countingTransport counts outbound calls to verify memoization.
type countingTransport struct {
	calls int32
}

func (t *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	atomic.AddInt32(&t.calls, 1)
	return http.DefaultTransport.RoundTrip(r)
}

const envelopeUSA = `[
	{"page":1,"pages":1,"per_page":1000,"total":2},
	[
		{"countryiso3code":"USA","date":"2020","value":123.4},
		{"countryiso3code":"USA","date":"2019","value":null}
	]
]`

func newTestClient(t *testing.T, baseURL string) (*Client, *countingTransport) {
	t.Helper()
	ct := &countingTransport{}
	httpc := xhttp.NewClient(xhttp.WithTransport(ct))
	return New(baseURL, 1000, httpc, cache.NewMemoryCache(), nil), ct
}

func TestFetchReturnsRecords(t *testing.T) {
	fake := httpfake.New()
	defer fake.Server.Close()
	fake.NewHandler().
		Get("/country/USA/indicator/NY.GDP.MKTP.CD").
		Reply(http.StatusOK).
		BodyString(envelopeUSA)

	c, _ := newTestClient(t, fake.Server.URL)
	recs, err := c.Fetch(context.Background(), "NY.GDP.MKTP.CD", []string{"USA"}, 2019, 2020)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Country != "USA" || recs[0].Date != "2020" {
		t.Fatalf("unexpected record %+v", recs[0])
	}
}

func TestFetchMemoizes(t *testing.T) {
	fake := httpfake.New()
	defer fake.Server.Close()
	fake.NewHandler().
		Get("/country/USA/indicator/NY.GDP.MKTP.CD").
		Reply(http.StatusOK).
		BodyString(envelopeUSA)

	c, ct := newTestClient(t, fake.Server.URL)
	ctx := context.Background()

	first, err := c.Fetch(ctx, "NY.GDP.MKTP.CD", []string{"USA"}, 2019, 2020)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Fetch(ctx, "NY.GDP.MKTP.CD", []string{"USA"}, 2019, 2020)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := atomic.LoadInt32(&ct.calls); got != 1 {
		t.Fatalf("expected 1 outbound call, got %d", got)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("memoized result differs: %+v vs %+v", first, second)
	}

	// a different year range is a different tuple
	if _, err := c.Fetch(ctx, "NY.GDP.MKTP.CD", []string{"USA"}, 2000, 2020); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&ct.calls); got != 2 {
		t.Fatalf("expected 2 outbound calls, got %d", got)
	}
}

func TestFetchNotFoundIsNoData(t *testing.T) {
	fake := httpfake.New()
	defer fake.Server.Close()
	fake.NewHandler().
		Get("/country/XYZ/indicator/BOGUS").
		Reply(http.StatusNotFound).
		BodyString(`{"message":"not found"}`)

	c, ct := newTestClient(t, fake.Server.URL)
	recs, err := c.Fetch(context.Background(), "BOGUS", []string{"XYZ"}, 2000, 2020)
	if err != nil {
		t.Fatalf("404 must not be an error, got %v", err)
	}
	if recs != nil {
		t.Fatalf("expected NoData, got %d records", len(recs))
	}

	// NoData is memoized as well
	if _, err := c.Fetch(context.Background(), "BOGUS", []string{"XYZ"}, 2000, 2020); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := atomic.LoadInt32(&ct.calls); got != 1 {
		t.Fatalf("expected 1 outbound call, got %d", got)
	}
}

func TestFetchBadEnvelopeIsNoData(t *testing.T) {
	cases := map[string]string{
		"single element": `[{"page":1}]`,
		"not an array":   `{"message":"error"}`,
		"null records":   `[{"page":1},null]`,
	}
	for name, body := range cases {
		fake := httpfake.New()
		fake.NewHandler().
			Get("/country/USA/indicator/NY.GDP.MKTP.CD").
			Reply(http.StatusOK).
			BodyString(body)

		c, _ := newTestClient(t, fake.Server.URL)
		recs, err := c.Fetch(context.Background(), "NY.GDP.MKTP.CD", []string{"USA"}, 2000, 2020)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if recs != nil {
			t.Fatalf("%s: expected NoData", name)
		}
		fake.Server.Close()
	}
}

func TestFetchTransportFailure(t *testing.T) {
	// nothing listens here
	c, _ := newTestClient(t, "http://127.0.0.1:1")
	_, err := c.Fetch(context.Background(), "NY.GDP.MKTP.CD", []string{"USA"}, 2000, 2020)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestFetchEmptyCountries(t *testing.T) {
	c, ct := newTestClient(t, "http://127.0.0.1:1")
	if _, err := c.Fetch(context.Background(), "NY.GDP.MKTP.CD", nil, 2000, 2020); err == nil {
		t.Fatalf("expected error for empty country selection")
	}
	if got := atomic.LoadInt32(&ct.calls); got != 0 {
		t.Fatalf("no fetch should happen, got %d calls", got)
	}
}

func TestFetchJoinsCountriesWithSemicolon(t *testing.T) {
	fake := httpfake.New()
	defer fake.Server.Close()
	fake.NewHandler().
		Get("/country/USA;CHN/indicator/NY.GDP.MKTP.CD").
		Reply(http.StatusOK).
		BodyString(`[{"page":1},[{"countryiso3code":"USA","date":"2020","value":1},{"countryiso3code":"CHN","date":"2020","value":2}]]`)

	c, _ := newTestClient(t, fake.Server.URL)
	recs, err := c.Fetch(context.Background(), "NY.GDP.MKTP.CD", []string{"USA", "CHN"}, 2020, 2020)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
}
