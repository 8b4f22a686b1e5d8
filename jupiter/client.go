// Package jupiter implements the token lookup and price oracle
// collaborators on top of Jupiter's lite API.
package jupiter

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"dlmmSniperSDK/constants"
	"dlmmSniperSDK/types"
)

// Sentinel results for lookups that completed but found nothing
// usable. The sniper degrades the affected display value instead of
// failing the session.
var (
	ErrTokenNotFound    = errors.New("token not found")
	ErrPriceUnavailable = errors.New("price unavailable")
)

// Client talks to Jupiter's lite API. Token metadata and prices are
// cached briefly so repeated renders of the same session do not hammer
// the API.
type Client struct {
	http   *resty.Client
	log    *logrus.Entry
	tokens *ttlCache[string, types.TokenInfo]
	prices *ttlCache[string, decimal.Decimal]
}

func NewClient(baseURL string, log *logrus.Entry) *Client {
	if baseURL == "" {
		baseURL = constants.JupiterLiteAPIBaseURL
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	httpClient := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second)

	return &Client{
		http:   httpClient,
		log:    log,
		tokens: newTTLCache[string, types.TokenInfo](),
		prices: newTTLCache[string, decimal.Decimal](),
	}
}

type tokenSearchEntry struct {
	ID       string `json:"id"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
	Icon     string `json:"icon"`
}

type priceEntry struct {
	USDPrice float64 `json:"usdPrice"`
}

// Resolve looks a token up by mint address via the token search
// endpoint. Returns ErrTokenNotFound when the search completes without
// an exact mint match.
func (c *Client) Resolve(ctx context.Context, mintAddress string) (types.TokenInfo, error) {
	if info, ok := c.tokens.get(mintAddress); ok {
		return info, nil
	}

	var results []tokenSearchEntry
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("query", mintAddress).
		SetResult(&results).
		Get(constants.JupiterTokenSearchPath)
	if err != nil {
		return types.TokenInfo{}, errors.Wrap(err, "token search request")
	}
	if resp.IsError() {
		return types.TokenInfo{}, errors.Errorf("token search returned %s", resp.Status())
	}

	for _, entry := range results {
		if entry.ID != mintAddress {
			continue
		}
		info := types.TokenInfo{
			Address:  entry.ID,
			Symbol:   entry.Symbol,
			Name:     entry.Name,
			Decimals: entry.Decimals,
			LogoURI:  entry.Icon,
		}
		c.tokens.set(mintAddress, info, constants.TokenInfoTTL)
		c.log.WithFields(logrus.Fields{"mint": mintAddress, "symbol": info.Symbol}).
			Debug("token resolved")
		return info, nil
	}
	return types.TokenInfo{}, ErrTokenNotFound
}

// Quote returns the price of the base token denominated in the quote
// token, derived from the USD prices of both mints. Returns
// ErrPriceUnavailable when either leg has no usable USD price.
func (c *Client) Quote(ctx context.Context, baseMint string, quote types.QuoteToken) (decimal.Decimal, error) {
	quoteMint, ok := constants.QuoteTokenMints[quote]
	if !ok {
		return decimal.Zero, errors.Errorf("unknown quote token %q", quote)
	}

	cacheKey := baseMint + "/" + quoteMint
	if price, ok := c.prices.get(cacheKey); ok {
		return price, nil
	}

	var data map[string]priceEntry
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("ids", baseMint+","+quoteMint).
		SetResult(&data).
		Get(constants.JupiterPricePath)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "price request")
	}
	if resp.IsError() {
		return decimal.Zero, errors.Errorf("price request returned %s", resp.Status())
	}

	basePrice, quotePrice := data[baseMint].USDPrice, data[quoteMint].USDPrice
	if basePrice <= 0 || quotePrice <= 0 {
		return decimal.Zero, ErrPriceUnavailable
	}

	price := decimal.NewFromFloat(basePrice).
		DivRound(decimal.NewFromFloat(quotePrice), 12)
	c.prices.set(cacheKey, price, constants.PriceTTL)
	return price, nil
}
