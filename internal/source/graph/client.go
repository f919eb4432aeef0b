package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"m365_collector/internal/domain"
)

// ErrForeignCursor is returned for a continuation link outside the base URL.
var ErrForeignCursor = errors.New("continuation link does not match graph base url")

const (
	DefaultBaseURL      = "https://graph.microsoft.com/v1.0"
	DefaultAuthorityURL = "https://login.microsoftonline.com"
	DefaultScope        = "https://graph.microsoft.com/.default"

	EndpointSubscribedSkus = "/subscribedSkus"
	EndpointUsers          = "/users"

	userSelect = "userPrincipalName,signInActivity"
)

// Config holds Graph client configuration.
type Config struct {
	TenantID          string
	ClientID          string
	ClientSecret      string
	BaseURL           string
	AuthorityURL      string
	PageSize          int
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	UserAgent         string
}

// Client is a thin Graph API client. It issues one request per call and
// reports every non-2xx response as *domain.UpstreamError; retrying is left
// to the caller.
type Client struct {
	httpClient *http.Client
	creds      clientcredentials.Config
	tokenHTTP  *http.Client
	baseURL    string
	base       *url.URL
	pageSize   int
	userAgent  string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// New creates a client authenticated with the OAuth2 client credentials flow.
// ctx scopes token refreshes and should live as long as the client.
func New(ctx context.Context, cfg Config, logger *slog.Logger) *Client {
	authority := strings.TrimRight(cfg.AuthorityURL, "/")
	if authority == "" {
		authority = DefaultAuthorityURL
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	creds := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     fmt.Sprintf("%s/%s/oauth2/v2.0/token", authority, url.PathEscape(cfg.TenantID)),
		Scopes:       []string{DefaultScope},
		AuthStyle:    oauth2.AuthStyleInParams,
	}

	tokenHTTP := &http.Client{Timeout: cfg.Timeout}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, tokenHTTP)

	httpClient := oauth2.NewClient(ctx, creds.TokenSource(ctx))
	httpClient.Timeout = cfg.Timeout

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	// An unparsable base URL surfaces on the first request.
	base, _ := url.Parse(baseURL)

	return &Client{
		httpClient: httpClient,
		creds:      creds,
		tokenHTTP:  tokenHTTP,
		baseURL:    baseURL,
		base:       base,
		pageSize:   cfg.PageSize,
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger.With("source", "graph"),
	}
}

// Authenticate acquires an access token so bad credentials fail fast.
func (c *Client) Authenticate(ctx context.Context) error {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.tokenHTTP)
	if _, err := c.creds.Token(ctx); err != nil {
		return fmt.Errorf("acquire token: %w", err)
	}
	c.logger.Info("authenticated to graph api")
	return nil
}

// FetchSubscribedSkus returns the tenant's subscribed SKUs.
func (c *Client) FetchSubscribedSkus(ctx context.Context) ([]domain.License, error) {
	var resp listResponse[SubscribedSku]
	if err := c.get(ctx, EndpointSubscribedSkus, c.baseURL+EndpointSubscribedSkus, &resp); err != nil {
		return nil, err
	}

	licenses := make([]domain.License, 0, len(resp.Value))
	for _, sku := range resp.Value {
		total := sku.PrepaidUnits.Enabled
		licenses = append(licenses, domain.License{
			SkuID:         sku.SkuID,
			SkuPartNumber: sku.SkuPartNumber,
			Total:         total,
			Assigned:      sku.ConsumedUnits,
			Available:     total - sku.ConsumedUnits,
		})
	}
	return licenses, nil
}

// FetchUsersPage fetches one page of users with sign-in activity. An empty
// cursor requests the first page; otherwise cursor must be the absolute
// @odata.nextLink of the previous page, on the same scheme and host as the
// base URL.
func (c *Client) FetchUsersPage(ctx context.Context, cursor string) (*domain.UserPage, error) {
	pageURL := cursor
	if pageURL != "" {
		if err := c.checkCursor(pageURL); err != nil {
			return nil, err
		}
	} else {
		q := url.Values{}
		q.Set("$select", userSelect)
		if c.pageSize > 0 {
			q.Set("$top", strconv.Itoa(c.pageSize))
		}
		pageURL = c.baseURL + EndpointUsers + "?" + q.Encode()
	}

	var resp listResponse[User]
	if err := c.get(ctx, EndpointUsers, pageURL, &resp); err != nil {
		return nil, err
	}

	c.logger.Debug("fetched users page",
		"users", len(resp.Value),
		"has_next", resp.NextLink != "",
	)

	return &domain.UserPage{
		Users:    c.transformUsers(resp.Value),
		NextLink: resp.NextLink,
	}, nil
}

// FetchUserLicenses returns the SKU IDs assigned to upn. A user Graph cannot
// find has no licenses.
func (c *Client) FetchUserLicenses(ctx context.Context, upn string) ([]string, error) {
	endpoint := LicenseDetailsEndpoint(upn)

	var resp listResponse[LicenseDetail]
	err := c.get(ctx, endpoint, c.baseURL+endpoint, &resp)
	var upErr *domain.UpstreamError
	if errors.As(err, &upErr) && upErr.StatusCode == http.StatusNotFound {
		c.logger.Warn("could not fetch licenses for user", "upn", upn)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	skuIDs := make([]string, 0, len(resp.Value))
	for _, detail := range resp.Value {
		skuIDs = append(skuIDs, detail.SkuID)
	}
	return skuIDs, nil
}

// checkCursor rejects continuation links that would send the bearer token
// anywhere but the Graph base URL.
func (c *Client) checkCursor(cursor string) error {
	u, err := url.Parse(cursor)
	if err != nil {
		return fmt.Errorf("parse cursor: %w", err)
	}
	if c.base == nil || !strings.EqualFold(u.Scheme, c.base.Scheme) || !strings.EqualFold(u.Host, c.base.Host) {
		return fmt.Errorf("cursor %q: %w", u.Redacted(), ErrForeignCursor)
	}
	return nil
}

// LicenseDetailsEndpoint is the path of a user's licenseDetails collection.
func LicenseDetailsEndpoint(upn string) string {
	return EndpointUsers + "/" + url.PathEscape(upn) + "/licenseDetails"
}

func (c *Client) get(ctx context.Context, endpoint, rawURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("wait for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &domain.UpstreamError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Message:    errorMessage(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) transformUsers(users []User) []domain.UserActivity {
	activity := make([]domain.UserActivity, 0, len(users))

	for _, u := range users {
		if u.UserPrincipalName == "" {
			continue
		}

		item := domain.UserActivity{UserPrincipalName: u.UserPrincipalName}
		if u.SignInActivity != nil && u.SignInActivity.LastSignInDateTime != nil {
			raw := *u.SignInActivity.LastSignInDateTime
			signedIn, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				c.logger.Warn("failed to parse sign-in time",
					"upn", u.UserPrincipalName,
					"value", raw,
				)
			} else {
				signedIn = signedIn.UTC()
				item.LastSignInAt = &signedIn
			}
		}

		activity = append(activity, item)
	}

	return activity
}

func errorMessage(body []byte) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err == nil && resp.Error.Message != "" {
		if resp.Error.Code != "" {
			return resp.Error.Code + ": " + resp.Error.Message
		}
		return resp.Error.Message
	}
	return strings.TrimSpace(string(body))
}
