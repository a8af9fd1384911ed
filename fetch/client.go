package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hautieng/candleboard/shared"
	"github.com/tidwall/gjson"
)

const (
	// SandboxBaseURL is the default sandbox API endpoint.
	SandboxBaseURL = "https://api-invest.tinkoff.ru/openapi/sandbox"

	registerPath = "/sandbox/register"
	clearPath    = "/sandbox/clear"
	removePath   = "/sandbox/remove"
	stocksPath   = "/market/stocks"
	candlesPath  = "/market/candles"
)

// BrokerConfig represents the configuration for the brokerage API client.
type BrokerConfig struct {
	// Token is the sandbox API token.
	Token string
	// BaseURL is the API endpoint.
	BaseURL string
}

// BrokerClient represents the brokerage market data API client.
type BrokerClient struct {
	cfg   *BrokerConfig
	httpc http.Client
	buf   *bytes.Buffer
}

// Ensure the broker client implements the provider interfaces.
var _ shared.InstrumentLister = (*BrokerClient)(nil)
var _ shared.CandleQuerier = (*BrokerClient)(nil)

// NewBrokerClient instantiates a new brokerage client and prepares its
// sandbox session: registers the client, clears open orders and zeroes
// balances. Any bootstrap failure is fatal to construction.
func NewBrokerClient(ctx context.Context, cfg *BrokerConfig) (*BrokerClient, error) {
	c := &BrokerClient{
		cfg:   cfg,
		httpc: http.Client{Timeout: time.Second * 5},
		buf:   bytes.NewBuffer(make([]byte, 0, 512)),
	}

	for _, path := range []string{registerPath, clearPath, removePath} {
		_, err := c.post(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("preparing sandbox session: %w", err)
		}
	}

	return c, nil
}

// formURL creates full urls including parameters for the api.
func (c *BrokerClient) formURL(path string, params string) string {
	c.buf.WriteString(c.cfg.BaseURL)
	c.buf.WriteString(path)
	if params != "" {
		c.buf.WriteString("?")
		c.buf.WriteString(params)
	}
	url := c.buf.String()
	c.buf.Reset()

	return url
}

// do issues the provided request with the session auth header set and
// returns the response body.
func (c *BrokerClient) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("issuing %s request: %w", req.URL.Path, err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s: %s", resp.StatusCode,
			req.URL.Path, gjson.GetBytes(body, "payload.message").String())
	}

	return body, nil
}

func (c *BrokerClient) post(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.formURL(path, ""), nil)
	if err != nil {
		return nil, fmt.Errorf("forming %s request: %w", path, err)
	}

	return c.do(req)
}

func (c *BrokerClient) get(ctx context.Context, path string, params string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.formURL(path, params), nil)
	if err != nil {
		return nil, fmt.Errorf("forming %s request: %w", path, err)
	}

	return c.do(req)
}

// ListInstruments fetches the full tradable stock listing.
func (c *BrokerClient) ListInstruments(ctx context.Context) ([]shared.Instrument, error) {
	body, err := c.get(ctx, stocksPath, "")
	if err != nil {
		return nil, fmt.Errorf("fetching instrument listing: %w", err)
	}

	data := gjson.GetBytes(body, "payload.instruments").Array()
	instruments := make([]shared.Instrument, 0, len(data))
	for idx := range data {
		instruments = append(instruments, shared.Instrument{
			Ticker:            data[idx].Get("ticker").String(),
			FIGI:              data[idx].Get("figi").String(),
			ISIN:              data[idx].Get("isin").String(),
			Currency:          data[idx].Get("currency").String(),
			Lot:               data[idx].Get("lot").Int(),
			MinPriceIncrement: data[idx].Get("minPriceIncrement").Float(),
			Name:              data[idx].Get("name").String(),
			Type:              data[idx].Get("type").String(),
		})
	}

	return instruments, nil
}

// GetCandles fetches candles for an instrument over the provided window.
// The window bounds are serialized as UTC timestamps.
func (c *BrokerClient) GetCandles(ctx context.Context, figi string, start time.Time, end time.Time, interval shared.Interval) (shared.CandleResponse, error) {
	params := url.Values{}
	params.Add("figi", figi)
	params.Add("from", start.UTC().Format(shared.RequestTimeLayout))
	params.Add("to", end.UTC().Format(shared.RequestTimeLayout))
	params.Add("interval", interval.String())

	body, err := c.get(ctx, candlesPath, params.Encode())
	if err != nil {
		return shared.CandleResponse{}, fmt.Errorf("fetching candles for %s: %w", figi, err)
	}

	return shared.CandleResponse{
		Status:  gjson.GetBytes(body, "status").String(),
		Candles: gjson.GetBytes(body, "payload.candles").Array(),
	}, nil
}
