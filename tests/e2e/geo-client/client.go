package geoclient

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature = map[string]any

// Client talks to the public server.
type Client struct {
	rc *resty.Client
}

func New(baseURL string, debug bool) *Client {
	return &Client{
		rc: resty.New().SetBaseURL(baseURL).SetDebug(debug),
	}
}

func (c *Client) Get(ctx context.Context, path string) (*resty.Response, error) {
	resp, err := c.rc.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("get %q: %v", path, err)
	}
	return resp, nil
}

func (c *Client) Head(ctx context.Context, path string) (*resty.Response, error) {
	resp, err := c.rc.R().SetContext(ctx).Head(path)
	if err != nil {
		return nil, fmt.Errorf("head %q: %v", path, err)
	}
	return resp, nil
}

func (c *Client) Execute(ctx context.Context, method, path string) (*resty.Response, error) {
	resp, err := c.rc.R().SetContext(ctx).Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %v", method, path, err)
	}
	return resp, nil
}

func (c *Client) GetFeatureCollection(ctx context.Context, path string) (*FeatureCollection, error) {
	var fc FeatureCollection
	resp, err := c.rc.R().SetContext(ctx).SetResult(&fc).ForceContentType("application/json").Get(path)
	if err != nil {
		return nil, fmt.Errorf("get %q: %v", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("get %q: unexpected status %d", path, resp.StatusCode())
	}
	return &fc, nil
}
