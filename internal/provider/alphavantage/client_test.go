package alphavantage_test

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"marketquotes/internal/provider"
	"marketquotes/internal/provider/alphavantage"
)

const aaplPayload = `{
    "Global Quote": {
        "01. symbol": "AAPL",
        "02. open": "189.3300",
        "05. price": "191.2400",
        "07. latest trading day": "2024-02-07",
        "09. change": "2.1500",
        "10. change percent": "1.1370%"
    }
}`

func okResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	// Assert: a valid key should return a client.
	client, err := alphavantage.NewClient("test")
	require.NoErrorf(t, err, "unexpected error: %v", err)
	require.NotNilf(t, client, "unexpected nil client")
	require.Equal(t, "AlphaVantage", client.Name())
}

func TestFetch_BuildsQuery(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock HTTP client
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, http.MethodGet, req.Method)
			require.Equal(t, "www.alphavantage.co", req.URL.Host)
			require.Equal(t, "/query", req.URL.Path)
			require.Equal(t, "GLOBAL_QUOTE", req.URL.Query().Get("function"))
			require.Equal(t, "AAPL", req.URL.Query().Get("symbol"))
			require.Equal(t, "test-key", req.URL.Query().Get("apikey"))
			return okResponse(aaplPayload), nil
		}).
		Times(1)

	// Arrange: setup a new client
	client, err := alphavantage.NewClient("test-key", alphavantage.WithHTTPClient(httpClient))
	require.NoError(t, err)

	// Act: fetch one symbol
	payload, err := client.Fetch(t.Context(), "AAPL")

	// Assert: the body is returned untouched
	require.NoError(t, err)
	require.JSONEq(t, aaplPayload, string(payload))
}

func TestFetch_EmptyKeyUsesDemo(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, alphavantage.DefaultAPIKey, req.URL.Query().Get("apikey"))
			return okResponse("{}"), nil
		}).
		Times(1)

	client, err := alphavantage.NewClient("", alphavantage.WithHTTPClient(httpClient))
	require.NoError(t, err)

	_, err = client.Fetch(t.Context(), "MSFT")
	require.NoError(t, err)
}

func TestWithBaseURL(t *testing.T) {
	t.Parallel()

	// Arrange: create a mock controller
	ctrl := gomock.NewController(t)

	// Arrange: create a mock http client
	httpClient := NewMockHTTPClient(ctrl)

	// Arrange: define a base url
	baseURL := "http://localhost:8080/query"

	// Assert: stub the Do method
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Truef(t, strings.HasPrefix(req.URL.String(), baseURL), "expected url to start with base url, received: %s", req.URL.String())
			return okResponse(aaplPayload), nil
		}).
		Times(1)

	// Arrange: create a new client.
	client, err := alphavantage.NewClient("test", alphavantage.WithHTTPClient(httpClient), alphavantage.WithBaseURL(baseURL))
	require.NoError(t, err)

	// Act: fetch with the overridden base URL.
	_, err = client.Fetch(t.Context(), "AAPL")
	require.NoError(t, err)
}

func TestWithHeaderAndFunction(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "bar", req.Header.Get("foo"))
			require.Equal(t, "TIME_SERIES_DAILY", req.URL.Query().Get("function"))
			return okResponse("{}"), nil
		}).
		Times(1)

	client, err := alphavantage.NewClient("test",
		alphavantage.WithHTTPClient(httpClient),
		alphavantage.WithFunction("TIME_SERIES_DAILY"),
		alphavantage.WithHeader(http.Header{"foo": []string{"bar"}}),
	)
	require.NoError(t, err)

	_, err = client.Fetch(t.Context(), "AAPL")
	require.NoError(t, err)
}

func TestFetch_NonOKStatusStillReturnsBody(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(&http.Response{
			StatusCode: http.StatusServiceUnavailable,
			Body:       io.NopCloser(strings.NewReader(`{"Information":"down for maintenance"}`)),
		}, nil).
		Times(1)

	client, err := alphavantage.NewClient("test", alphavantage.WithHTTPClient(httpClient))
	require.NoError(t, err)

	payload, err := client.Fetch(t.Context(), "AAPL")
	require.NoError(t, err)
	require.Contains(t, string(payload), "down for maintenance")
}

func TestFetch_TransportErrorIsFetchError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(nil, errors.New("dial tcp: connection refused")).
		Times(1)

	client, err := alphavantage.NewClient("test", alphavantage.WithHTTPClient(httpClient))
	require.NoError(t, err)

	payload, err := client.Fetch(t.Context(), "AAPL")
	require.Nil(t, payload)

	var fe *provider.FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "AAPL", fe.Symbol)
	require.Contains(t, err.Error(), "connection refused")
}

func TestFetch_ErrCreatingRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)

	// Assert: the request never reaches the transport
	httpClient.EXPECT().
		Do(gomock.Any()).
		Times(0)

	client, err := alphavantage.NewClient("test", alphavantage.WithHTTPClient(httpClient), alphavantage.WithBaseURL("://bad"))
	require.NoError(t, err)

	_, err = client.Fetch(t.Context(), "AAPL")
	var fe *provider.FetchError
	require.ErrorAs(t, err, &fe)
}
