package mcp

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

	"github.com/meltforce/ironlog/internal/analytics"
	"github.com/meltforce/ironlog/internal/models"
)

// HTTPClient implements DataSource by calling the IronLog REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func userPath(userID int, exerciseID, leaf string) string {
	return "/api/v1/users/" + strconv.Itoa(userID) + "/exercises/" + url.PathEscape(exerciseID) + "/" + leaf
}

func (c *HTTPClient) ExerciseRecords(ctx context.Context, userID int, exerciseID string) ([]models.ExerciseRecordPoint, error) {
	body, err := c.get(ctx, userPath(userID, exerciseID, "records"), nil)
	if err != nil {
		return nil, err
	}

	var records []models.ExerciseRecordPoint
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("httpclient: decode records: %w", err)
	}
	return records, nil
}

func (c *HTTPClient) Bests(ctx context.Context, userID int, exerciseID string) (models.PersonalBests, error) {
	body, err := c.get(ctx, userPath(userID, exerciseID, "bests"), nil)
	if err != nil {
		return models.PersonalBests{}, err
	}

	var bests models.PersonalBests
	if err := json.Unmarshal(body, &bests); err != nil {
		return models.PersonalBests{}, fmt.Errorf("httpclient: decode bests: %w", err)
	}
	return bests, nil
}

func (c *HTTPClient) Progress(ctx context.Context, userID int, exerciseID string) ([]models.ProgressPoint, error) {
	body, err := c.get(ctx, userPath(userID, exerciseID, "progress"), nil)
	if err != nil {
		return nil, err
	}

	var points []models.ProgressPoint
	if err := json.Unmarshal(body, &points); err != nil {
		return nil, fmt.Errorf("httpclient: decode progress: %w", err)
	}
	return points, nil
}

func (c *HTTPClient) StandardFor(ctx context.Context, userID int, exerciseID string) (*analytics.Classification, error) {
	body, err := c.get(ctx, userPath(userID, exerciseID, "standard"), nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Classification *analytics.Classification `json:"classification"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode standard: %w", err)
	}
	return resp.Classification, nil
}

func (c *HTTPClient) StandardsLadder(ctx context.Context, exerciseID string, gender models.Gender) (*analytics.StandardsLadder, error) {
	params := url.Values{}
	params.Set("gender", string(gender))

	body, err := c.get(ctx, "/api/v1/exercises/"+url.PathEscape(exerciseID)+"/standards", params)
	if err != nil {
		return nil, err
	}

	var ladder analytics.StandardsLadder
	if err := json.Unmarshal(body, &ladder); err != nil {
		return nil, fmt.Errorf("httpclient: decode standards ladder: %w", err)
	}
	return &ladder, nil
}

func (c *HTTPClient) ExercisePercentile(ctx context.Context, userID int, exerciseID string) (models.LeaderboardEntry, error) {
	body, err := c.get(ctx, userPath(userID, exerciseID, "percentile"), nil)
	if err != nil {
		return models.LeaderboardEntry{}, err
	}

	var entry models.LeaderboardEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return models.LeaderboardEntry{}, fmt.Errorf("httpclient: decode percentile: %w", err)
	}
	return entry, nil
}

func (c *HTTPClient) Leaderboard(ctx context.Context, userID int) ([]models.LeaderboardEntry, error) {
	body, err := c.get(ctx, "/api/v1/users/"+strconv.Itoa(userID)+"/leaderboard", nil)
	if err != nil {
		return nil, err
	}

	var entries []models.LeaderboardEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("httpclient: decode leaderboard: %w", err)
	}
	return entries, nil
}
