package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/krharsh17/alexa-flight-booking/models"

	"go.uber.org/zap"
)

const (
	tokenPath  = "/v1/security/oauth2/token"
	searchPath = "/v2/shopping/flight-offers"
	orderPath  = "/v1/booking/flight-orders"

	// Tokens are cached slightly shorter than the provider's expiry so a
	// cached token is never presented right at its deadline.
	tokenTTLMargin = 60 * time.Second
)

// TokenCache stores the provider access token between invocations.
// Get returns "" on a miss.
type TokenCache interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string, ttl time.Duration) error
}

// AmadeusClient talks to the Amadeus self-service REST API using the
// OAuth2 client-credentials flow.
type AmadeusClient struct {
	baseURL   string
	apiKey    string
	apiSecret string
	http      *http.Client
	tokens    TokenCache
	logger    *zap.Logger
}

// NewAmadeusClient builds a provider client. tokens may be nil, in which
// case a fresh access token is fetched on every call.
func NewAmadeusClient(baseURL, apiKey, apiSecret string, tokens TokenCache, logger *zap.Logger) *AmadeusClient {
	return &AmadeusClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		apiSecret: apiSecret,
		http:      &http.Client{Timeout: 15 * time.Second},
		tokens:    tokens,
		logger:    logger,
	}
}

// APIError is the provider's error envelope decoded into an error value.
type APIError struct {
	StatusCode int
	Errors     []struct {
		Status int    `json:"status"`
		Code   int    `json:"code"`
		Title  string `json:"title"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		first := e.Errors[0]
		return fmt.Sprintf("amadeus: %d %s: %s", e.StatusCode, first.Title, first.Detail)
	}
	return fmt.Sprintf("amadeus: unexpected status %d", e.StatusCode)
}

func (c *AmadeusClient) accessToken(ctx context.Context) (string, error) {
	if c.tokens != nil {
		token, err := c.tokens.Get(ctx)
		if err != nil {
			c.logger.Warn("token cache read failed, fetching fresh token", zap.Error(err))
		} else if token != "" {
			return token, nil
		}
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.apiKey},
		"client_secret": {c.apiSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", decodeAPIError(resp)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("decoding token response failed: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", fmt.Errorf("token response missing access_token")
	}

	if c.tokens != nil {
		ttl := time.Duration(tokenResp.ExpiresIn)*time.Second - tokenTTLMargin
		if ttl > 0 {
			if err := c.tokens.Set(ctx, tokenResp.AccessToken, ttl); err != nil {
				c.logger.Warn("token cache write failed", zap.Error(err))
			}
		}
	}
	return tokenResp.AccessToken, nil
}

// SearchOffers runs a flight-offers search and returns the provider's
// count plus the ordered offers, each keeping its raw payload.
func (c *AmadeusClient) SearchOffers(ctx context.Context, query SearchQuery) (*SearchResult, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"originLocationCode":      {query.OriginCode},
		"destinationLocationCode": {query.DestinationCode},
		"departureDate":           {query.DepartureDate},
		"adults":                  {strconv.Itoa(query.Adults)},
		"max":                     {strconv.Itoa(query.MaxResults)},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flight offers search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var searchResp struct {
		Meta struct {
			Count int `json:"count"`
		} `json:"meta"`
		Data []json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decoding search response failed: %w", err)
	}

	offers := make([]models.Offer, 0, len(searchResp.Data))
	for _, raw := range searchResp.Data {
		var offer models.Offer
		if err := json.Unmarshal(raw, &offer); err != nil {
			return nil, fmt.Errorf("decoding offer failed: %w", err)
		}
		offer.Raw = raw
		offers = append(offers, offer)
	}

	count := searchResp.Meta.Count
	if count == 0 {
		count = len(offers)
	}
	return &SearchResult{Count: count, Offers: offers}, nil
}

// CreateOrder submits a flight order for the chosen offer and traveler.
func (c *AmadeusClient) CreateOrder(ctx context.Context, orderReq OrderRequest) (*FlightOrder, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	offerPayload, err := orderReq.Offer.ProviderPayload()
	if err != nil {
		return nil, fmt.Errorf("encoding offer failed: %w", err)
	}

	body, err := json.Marshal(map[string]any{
		"data": map[string]any{
			"type":         "flight-order",
			"flightOffers": []json.RawMessage{offerPayload},
			"travelers":    []models.TravelerProfile{orderReq.Traveler},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encoding order request failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+orderPath, strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flight order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, decodeAPIError(resp)
	}

	var orderResp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&orderResp); err != nil {
		return nil, fmt.Errorf("decoding order response failed: %w", err)
	}
	if orderResp.Data.ID == "" {
		return nil, fmt.Errorf("order response missing id")
	}
	return &FlightOrder{ID: orderResp.Data.ID}, nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		_ = json.Unmarshal(body, apiErr)
	}
	return apiErr
}
