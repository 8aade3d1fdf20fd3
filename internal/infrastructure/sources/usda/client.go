// Package usda fetches food nutrient data from the USDA FoodData Central
// API.  A lookup is two requests: a search resolving the food name to an
// FDC ID, then a detail fetch returning the nutrient list.
package usda

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// DefaultTimeout bounds a single API request.
const DefaultTimeout = 8 * time.Second

// Nutrient is one nutrient entry from a food detail response.
type Nutrient struct {
	ID     int
	Amount *float64
}

// Food is the result of a nutrient lookup.
type Food struct {
	FDCID       int64
	Description string
	Nutrients   []Nutrient
}

// Client queries FoodData Central.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        logging.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	Logger  logging.Logger
}

// NewClient constructs a FoodData Central client.  An empty API key falls
// back to the rate-limited demo key.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://api.nal.usda.gov/fdc/v1"
	}
	if opts.APIKey == "" {
		opts.APIKey = "DEMO_KEY"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		httpClient: &http.Client{Timeout: opts.Timeout},
		log:        opts.Logger.Named("usda"),
	}
}

type searchResponse struct {
	Foods []struct {
		FDCID       int64  `json:"fdcId"`
		Description string `json:"description"`
	} `json:"foods"`
}

type detailResponse struct {
	Description   string `json:"description"`
	FoodNutrients []struct {
		Nutrient struct {
			ID int `json:"id"`
		} `json:"nutrient"`
		Amount *float64 `json:"amount"`
	} `json:"foodNutrients"`
}

// LookupFood resolves a food name to its nutrient list, taking the top
// search hit.  Foods with no search hit map to a not-found error; network
// failures and timeouts map to upstream source errors.
func (c *Client) LookupFood(ctx context.Context, foodName string) (*Food, error) {
	name := strings.TrimSpace(foodName)
	if name == "" {
		return nil, apperrors.New(apperrors.ErrCodeBadRequest, "food name is empty")
	}

	fdcID, description, err := c.search(ctx, name)
	if err != nil {
		return nil, err
	}

	nutrients, detailDesc, err := c.detail(ctx, fdcID)
	if err != nil {
		return nil, err
	}
	if detailDesc != "" {
		description = detailDesc
	}

	c.log.Debug("fetched food nutrients",
		logging.String("food", name),
		logging.Int64("fdc_id", fdcID),
		logging.Int("nutrients", len(nutrients)))
	return &Food{FDCID: fdcID, Description: description, Nutrients: nutrients}, nil
}

func (c *Client) search(ctx context.Context, name string) (int64, string, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("query", name)
	q.Set("pageSize", "1")
	endpoint := c.baseURL + "/foods/search?" + q.Encode()

	var parsed searchResponse
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return 0, "", err
	}
	if len(parsed.Foods) == 0 {
		return 0, "", apperrors.New(apperrors.ErrCodeFoodNotFound,
			fmt.Sprintf("no food found for %q", name))
	}
	return parsed.Foods[0].FDCID, parsed.Foods[0].Description, nil
}

func (c *Client) detail(ctx context.Context, fdcID int64) ([]Nutrient, string, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	endpoint := c.baseURL + "/food/" + strconv.FormatInt(fdcID, 10) + "?" + q.Encode()

	var parsed detailResponse
	if err := c.getJSON(ctx, endpoint, &parsed); err != nil {
		return nil, "", err
	}
	nutrients := make([]Nutrient, 0, len(parsed.FoodNutrients))
	for _, fn := range parsed.FoodNutrients {
		nutrients = append(nutrients, Nutrient{ID: fn.Nutrient.ID, Amount: fn.Amount})
	}
	return nutrients, parsed.Description, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "build food data request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return apperrors.Wrap(err, apperrors.ErrCodeSourceTimeout, "food data request timed out")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeSourceUnavailable, "food data request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.New(apperrors.ErrCodeFoodNotFound, "food record not found")
	case resp.StatusCode == http.StatusTooManyRequests:
		return apperrors.New(apperrors.ErrCodeSourceRateLimited, "food data rate limit exceeded")
	case resp.StatusCode != http.StatusOK:
		return apperrors.New(apperrors.ErrCodeSourceUnavailable,
			fmt.Sprintf("food data source returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeSourceParseError, "decode food data response")
	}
	return nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
