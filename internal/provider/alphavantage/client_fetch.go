package alphavantage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"marketquotes/internal/provider"
)

// Fetch performs one GET for symbol and returns the body untouched.
// The status code is not checked: error bodies go to the parser as-is.
func (c *Client) Fetch(ctx context.Context, symbol string) (provider.RawPayload, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, &provider.FetchError{Symbol: symbol, Err: fmt.Errorf("parsing base url: %w", err)}
	}
	query := u.Query()
	for key, values := range c.query {
		query[key] = append([]string(nil), values...)
	}
	query.Set("function", c.function)
	query.Set("symbol", symbol)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, &provider.FetchError{Symbol: symbol, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header = c.header.Clone()

	log := c.log.WithFields(logrus.Fields{"provider": c.Name(), "symbol": symbol})
	log.WithField("url", redact(u)).Debug("querying upstream")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &provider.FetchError{Symbol: symbol, Err: fmt.Errorf("performing request: %w", err)}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &provider.FetchError{Symbol: symbol, Err: fmt.Errorf("reading response: %w", err)}
	}
	log.WithFields(logrus.Fields{"status": res.StatusCode, "body": string(body)}).Debug("upstream response")
	return body, nil
}

// redact hides the api key in logged URLs.
func redact(u *url.URL) string {
	cp := *u
	q := cp.Query()
	if q.Has("apikey") {
		q.Set("apikey", "REDACTED")
	}
	cp.RawQuery = q.Encode()
	return cp.String()
}
