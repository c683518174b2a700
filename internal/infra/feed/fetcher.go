package feed

import (
	"context"
	"net/url"
	"time"

	domainerrors "bazaar/internal/domain/errors"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const fetchTimeout = 30 * time.Second

// Fetcher downloads a feed document from a partner-supplied URL. Fetching is
// a delivery-layer concern: the ingestion use case only ever sees the bytes.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher builds a Fetcher with a bounded request timeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client: resty.New().SetTimeout(fetchTimeout),
	}
}

// Fetch validates the URL and downloads the document body.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, domainerrors.ErrValidationFailed.WithDetails("url").WrapMessage("feed url is not a valid http(s) url")
	}

	resp, err := f.client.R().SetContext(ctx).Get(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch feed from %s", rawURL)
	}
	if resp.IsError() {
		return nil, errors.Errorf("feed fetch from %s returned status %d", rawURL, resp.StatusCode())
	}

	return resp.Body(), nil
}
