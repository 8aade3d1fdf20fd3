// Package cactus resolves drug names to canonical SMILES strings via the
// NCI CACTUS chemical identifier resolver.
package cactus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nutrirx/DrugFood-Intelligence/internal/infrastructure/monitoring/logging"
	apperrors "github.com/nutrirx/DrugFood-Intelligence/pkg/errors"
)

// DefaultTimeout bounds a single resolver request.
const DefaultTimeout = 5 * time.Second

// Client queries the CACTUS structure resolver.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Logger  logging.Logger
}

// NewClient constructs a resolver client.  Zero-value options fall back to
// the public CACTUS endpoint and DefaultTimeout.
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://cactus.nci.nih.gov/chemical/structure"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNopLogger()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		httpClient: &http.Client{Timeout: opts.Timeout},
		log:        opts.Logger.Named("cactus"),
	}
}

// CanonicalSMILES resolves a drug name to its canonical SMILES string.
// Unknown names map to a not-found error; network failures and timeouts map
// to upstream source errors that callers propagate as-is.
func (c *Client) CanonicalSMILES(ctx context.Context, drugName string) (string, error) {
	name := strings.TrimSpace(drugName)
	if name == "" {
		return "", apperrors.New(apperrors.ErrCodeBadRequest, "drug name is empty")
	}

	endpoint := fmt.Sprintf("%s/%s/canonical_smiles", c.baseURL, url.PathEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "build resolver request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return "", apperrors.Wrap(err, apperrors.ErrCodeSourceTimeout,
				fmt.Sprintf("resolver timed out for %q", name))
		}
		return "", apperrors.Wrap(err, apperrors.ErrCodeSourceUnavailable,
			fmt.Sprintf("resolver request failed for %q", name))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", apperrors.New(apperrors.ErrCodeDrugNotFound,
			fmt.Sprintf("no structure found for drug %q", name))
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", apperrors.New(apperrors.ErrCodeSourceRateLimited, "resolver rate limit exceeded")
	case resp.StatusCode != http.StatusOK:
		return "", apperrors.New(apperrors.ErrCodeSourceUnavailable,
			fmt.Sprintf("resolver returned status %d for %q", resp.StatusCode, name))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeSourceParseError, "read resolver response")
	}
	smiles := strings.TrimSpace(string(body))
	if smiles == "" {
		return "", apperrors.New(apperrors.ErrCodeSourceParseError,
			fmt.Sprintf("resolver returned an empty structure for %q", name))
	}
	// multi-line responses carry alternate structures; the first is canonical
	if i := strings.IndexByte(smiles, '\n'); i >= 0 {
		smiles = strings.TrimSpace(smiles[:i])
	}
	c.log.Debug("resolved drug structure", logging.String("drug", name), logging.String("smiles", smiles))
	return smiles, nil
}

func isTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
