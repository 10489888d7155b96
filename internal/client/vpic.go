package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"scrapquote/internal/dto/vpic_dto"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Client struct {
	APIURL string
	client *http.Client
}

// NewClient returns a client of the vPIC canadian specifications api.
// Zero timeout leaves the transport default in place.
func NewClient(apiURL string, timeout time.Duration) (*Client, error) {
	if apiURL == "" {
		return nil, errors.New("api url is empty")
	}
	if _, err := url.Parse(apiURL); err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}
	return &Client{
		APIURL: apiURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// FetchSpecs gets raw specifications of every trim of a vehicle
func (c *Client) FetchSpecs(ctx context.Context, year int, makeName, modelName string) (*vpic_dto.ResponseBody, error) {
	reqURL, err := c.buildURL(year, makeName, modelName)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("err during creating a request with context: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			log.Error().Msg("couldn't close a body")
			return
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamHTTPError{StatusCode: resp.StatusCode}
	}

	var response vpic_dto.ResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, &UpstreamDecodeError{Err: err}
	}

	return &response, nil
}

func (c *Client) buildURL(year int, makeName, modelName string) (string, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return "", fmt.Errorf("invalid api url: %w", err)
	}
	q := u.Query()
	q.Set("year", strconv.Itoa(year))
	q.Set("make", makeName)
	q.Set("model", modelName)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	return u.String(), nil
}
