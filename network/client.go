package network

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spikeekips/kaspaddr/address"
	"github.com/spikeekips/kaspaddr/big"
	"github.com/spikeekips/kaspaddr/common"
)

const (
	AddressPlaceholder string        = "{address}"
	DefaultBalancePath string        = "/addresses/{address}/balance"
	V2BalancePath      string        = "/v2/address/{address}/balance"
	DefaultTimeout     time.Duration = time.Second * 10
	RequestIDHeader    string        = "X-Request-Id"
	maxBodySize        int64         = 1 << 20
)

type BalanceClient interface {
	Balance(context.Context, address.Address) (Balance, error)
}

// Balance is the result of one lookup. Found is false when the service does
// not know the address; Amount is zero then.
type Balance struct {
	Address address.Address `json:"address"`
	Amount  big.Big         `json:"balance"`
	Found   bool            `json:"found"`
}

type balanceBody struct {
	Balance big.Big `json:"balance"`
}

type HTTPBalanceClient struct {
	*common.Logger
	baseURL string
	path    string
	client  *http.Client
}

func NewHTTPBalanceClient(baseURL, path string, timeout time.Duration) (*HTTPBalanceClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, InvalidEndpointError.Wrap(err)
	}

	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return nil, InvalidEndpointError.AppendMessage("unsupported scheme; %q", u.Scheme)
	case len(u.Host) < 1:
		return nil, InvalidEndpointError.AppendMessage("empty host")
	}

	if len(path) < 1 {
		path = DefaultBalancePath
	}

	if !strings.Contains(path, AddressPlaceholder) {
		return nil, InvalidEndpointError.AppendMessage("path has no %s; %q", AddressPlaceholder, path)
	}

	if timeout < 1 {
		timeout = DefaultTimeout
	}

	return &HTTPBalanceClient{
		Logger:  common.NewLogger(Log(), "base_url", u.String(), "path", path),
		baseURL: strings.TrimRight(u.String(), "/"),
		path:    path,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPBalanceClient) URL(a address.Address) string {
	p := strings.Replace(c.path, AddressPlaceholder, url.PathEscape(a.String()), 1)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}

	return c.baseURL + p
}

// Balance requests the balance of a once; failures are not retried.
func (c *HTTPBalanceClient) Balance(ctx context.Context, a address.Address) (Balance, error) {
	if a.IsEmpty() {
		return Balance{}, BalanceQueryError.AppendMessage("empty address")
	}

	u := c.URL(a)
	id := common.RandomUUID()
	l := c.Log().New("request_id", id, "address", a)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Balance{}, BalanceQueryError.Wrap(err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, id)

	l.Debug("requesting balance", "url", u)

	resp, err := c.client.Do(req)
	if err != nil {
		l.Error("failed to request balance", "error", err)

		return Balance{}, NetworkError.Wrap(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Balance{}, NetworkError.Wrap(err)
	}

	l.Debug("got response", "status", resp.StatusCode, "length", len(body))

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return Balance{Address: a, Amount: big.ZeroBig, Found: false}, nil
	default:
		return Balance{}, BalanceQueryError.AppendMessage("status=%d body=%q", resp.StatusCode, snippet(body))
	}

	var b balanceBody
	if err := common.DecodeJSON(body, &b); err != nil {
		return Balance{}, BalanceQueryError.Wrap(err)
	}

	return Balance{Address: a, Amount: b.Balance, Found: true}, nil
}

func snippet(b []byte) string {
	if len(b) > 100 {
		return string(b[:100]) + "..."
	}

	return string(b)
}
