package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"

	"nhl-cap-service/internal/providers"
)

// FetchHTML issues a GET for path and parses the body as HTML.
func FetchHTML(ctx context.Context, client *resty.Client, provider, path string) (*goquery.Document, error) {
	res, err := get(ctx, client, provider, path)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return nil, &providers.FetchError{Provider: provider, URL: requestURL(client, path), StatusCode: res.StatusCode(), Err: err}
	}
	return doc, nil
}

// FetchJSON issues a GET for path and decodes the body into dest.
func FetchJSON(ctx context.Context, client *resty.Client, provider, path string, dest any) error {
	res, err := get(ctx, client, provider, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(res.Body(), dest); err != nil {
		return &providers.FetchError{
			Provider:   provider,
			URL:        requestURL(client, path),
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("decode body: %w", err),
		}
	}
	return nil
}

func get(ctx context.Context, client *resty.Client, provider, path string) (*resty.Response, error) {
	res, err := client.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, &providers.FetchError{Provider: provider, URL: requestURL(client, path), Err: err}
	}
	if !res.IsSuccess() {
		return nil, &providers.FetchError{
			Provider:   provider,
			URL:        requestURL(client, path),
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("unexpected status %s", res.Status()),
		}
	}
	return res, nil
}

func requestURL(client *resty.Client, path string) string {
	return strings.TrimRight(client.BaseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
