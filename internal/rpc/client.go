package rpc

import (
    "context"
    "fmt"

    "google.golang.org/grpc"
    "google.golang.org/grpc/credentials/insecure"

    "marketquotes/internal/rpc/marketpb"
)

// DefaultAddr is where the quote service listens for gRPC by default.
const DefaultAddr = "localhost:8005"

// Client talks to a running quote service over gRPC.
type Client struct {
    conn   *grpc.ClientConn
    client marketpb.MarketDataServiceClient
}

// Connect dials addr (DefaultAddr if empty) without TLS. Extra options
// are appended after the defaults.
func Connect(addr string, opts ...grpc.DialOption) (*Client, error) {
    if addr == "" { addr = DefaultAddr }
    opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)
    conn, err := grpc.NewClient(addr, opts...)
    if err != nil {
        return nil, fmt.Errorf("connecting to market data service: %w", err)
    }
    return &Client{conn: conn, client: marketpb.NewMarketDataServiceClient(conn)}, nil
}

func (c *Client) Close() error {
    return c.conn.Close()
}

// GetStockPrice returns the quote for symbol, or an error if the call
// failed or the service reported the lookup as unsuccessful.
func (c *Client) GetStockPrice(ctx context.Context, symbol string) (*marketpb.StockQuote, error) {
    resp, err := c.client.GetStockPrice(ctx, &marketpb.GetStockPriceRequest{Symbol: symbol})
    if err != nil {
        return nil, fmt.Errorf("grpc call failed: %w", err)
    }
    if !resp.Success {
        return nil, fmt.Errorf("service error: %s", resp.ErrorMessage)
    }
    return resp, nil
}

// GetMultipleStocks returns every item, failed ones included.
func (c *Client) GetMultipleStocks(ctx context.Context, symbols []string) (*marketpb.GetMultipleStocksResponse, error) {
    resp, err := c.client.GetMultipleStocks(ctx, &marketpb.GetMultipleStocksRequest{Symbols: symbols})
    if err != nil {
        return nil, fmt.Errorf("grpc call failed: %w", err)
    }
    if !resp.Success {
        return nil, fmt.Errorf("service error: %s", resp.ErrorMessage)
    }
    return resp, nil
}

// GetMultipleStockPrices maps each requested symbol to its price for the
// successful items.
func (c *Client) GetMultipleStockPrices(ctx context.Context, symbols []string) (map[string]float64, error) {
    resp, err := c.GetMultipleStocks(ctx, symbols)
    if err != nil {
        return nil, err
    }
    prices := make(map[string]float64, len(resp.Items))
    for _, it := range resp.Items {
        if it.Success { prices[it.Symbol] = it.Price }
    }
    return prices, nil
}

// ValidateSymbol reports whether the service can quote symbol. Transport
// failures are returned as errors, not as false.
func (c *Client) ValidateSymbol(ctx context.Context, symbol string) (bool, error) {
    resp, err := c.client.GetStockPrice(ctx, &marketpb.GetStockPriceRequest{Symbol: symbol})
    if err != nil {
        return false, fmt.Errorf("grpc call failed: %w", err)
    }
    return resp.Success, nil
}
