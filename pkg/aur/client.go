// Package aur talks to the Arch User Repository.
package aur

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultSearchURL is the AUR package search page, used for the
	// best-effort existence check.
	DefaultSearchURL = "https://aur.archlinux.org/packages/"

	// DefaultRPCURL is the AUR RPC v5 API endpoint.
	DefaultRPCURL = "https://aur.archlinux.org/rpc/v5"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// noResultsMarker appears in the search page body when the query
	// matched nothing.
	noResultsMarker = "No packages matched your search criteria."
)

// Client is an AUR client covering the search page and the RPC API.
type Client struct {
	searchURL  string
	rpcURL     string
	httpClient *http.Client
}

// Package represents an AUR package from the RPC API.
type Package struct {
	ID             int      `json:"ID"`
	Name           string   `json:"Name"`
	PackageBase    string   `json:"PackageBase"`
	Version        string   `json:"Version"`
	Description    string   `json:"Description"`
	URL            string   `json:"URL"`
	NumVotes       int      `json:"NumVotes"`
	Popularity     float64  `json:"Popularity"`
	OutOfDate      *int64   `json:"OutOfDate"` // Unix timestamp, nil if current
	Maintainer     string   `json:"Maintainer"`
	FirstSubmitted int64    `json:"FirstSubmitted"`
	LastModified   int64    `json:"LastModified"`
	Depends        []string `json:"Depends"`
	MakeDepends    []string `json:"MakeDepends"`
	License        []string `json:"License"`
	Keywords       []string `json:"Keywords"`
}

// Response is the AUR RPC API response structure.
type Response struct {
	Version     int       `json:"version"`
	Type        string    `json:"type"`
	ResultCount int       `json:"resultcount"`
	Results     []Package `json:"results"`
	Error       string    `json:"error,omitempty"`
}

// NewClient creates an AUR client with default settings.
func NewClient() *Client {
	return NewClientWithOptions("", "", 0)
}

// NewClientWithOptions creates an AUR client with custom endpoints and
// timeout; zero values fall back to the defaults.
func NewClientWithOptions(searchURL, rpcURL string, timeout time.Duration) *Client {
	if searchURL == "" {
		searchURL = DefaultSearchURL
	}
	if rpcURL == "" {
		rpcURL = DefaultRPCURL
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		searchURL: searchURL,
		rpcURL:    rpcURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Exists runs a name search against the AUR packages page and reports
// whether anything matched. The page is scanned for its literal
// "no results" marker, so a false return means the AUR explicitly
// answered that nothing matched.
func (c *Client) Exists(ctx context.Context, name string) (bool, error) {
	params := url.Values{}
	params.Set("O", "0")
	params.Set("SeB", "N")
	params.Set("K", name)
	params.Set("SB", "n")
	params.Set("SO", "a")
	params.Set("PP", "50")
	params.Set("do_Search", "Go")

	endpoint := c.searchURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "pacctl/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	return !strings.Contains(string(body), noResultsMarker), nil
}

// Info retrieves detailed information about one or more packages via
// the RPC API.
func (c *Client) Info(ctx context.Context, names ...string) ([]Package, error) {
	if len(names) == 0 {
		return nil, nil
	}

	params := make([]string, len(names))
	for i, name := range names {
		params[i] = "arg[]=" + url.QueryEscape(name)
	}
	endpoint := fmt.Sprintf("%s/info?%s", c.rpcURL, strings.Join(params, "&"))

	resp, err := c.doRequest(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GetPackage retrieves information about a single package.
func (c *Client) GetPackage(ctx context.Context, name string) (*Package, error) {
	packages, err := c.Info(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, fmt.Errorf("package not found: %s", name)
	}
	return &packages[0], nil
}

// doRequest performs an HTTP GET against the RPC API.
func (c *Client) doRequest(ctx context.Context, endpoint string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "pacctl/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("AUR API error (status %d): %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var aurResp Response
	if err := json.Unmarshal(body, &aurResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if aurResp.Error != "" {
		return nil, fmt.Errorf("AUR API error: %s", aurResp.Error)
	}
	return &aurResp, nil
}

// IsOutOfDate returns true if the package is flagged out of date.
func (p *Package) IsOutOfDate() bool {
	return p.OutOfDate != nil
}

// LastModifiedTime returns when the package was last modified.
func (p *Package) LastModifiedTime() time.Time {
	return time.Unix(p.LastModified, 0)
}

// GitCloneURL returns the git clone URL for a package.
func (p *Package) GitCloneURL() string {
	return fmt.Sprintf("https://aur.archlinux.org/%s.git", p.PackageBase)
}
