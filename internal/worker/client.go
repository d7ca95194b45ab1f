package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client is a thin GraphQL client for the CRM API, used by the scheduled
// jobs. Requests carry the worker client-type header so the rate limiter
// puts them on the internal tier.
type Client struct {
	http     *resty.Client
	endpoint string
}

func NewClient(endpoint, authToken string) *Client {
	http := resty.New().
		SetTimeout(30 * time.Second).
		SetRetryCount(3).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Client-Type", "worker")

	if authToken != "" {
		http.SetAuthToken(authToken)
	}

	return &Client{http: http, endpoint: endpoint}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors,omitempty"`
}

// Execute posts the query and unmarshals the data payload into out.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]any, out any) error {
	var gqlResp graphqlResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(graphqlRequest{Query: query, Variables: variables}).
		SetResult(&gqlResp).
		Post(c.endpoint)
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("graphql endpoint returned status %d", resp.StatusCode())
	}
	if len(gqlResp.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", gqlResp.Errors[0].Message)
	}

	if out != nil {
		return json.Unmarshal(gqlResp.Data, out)
	}
	return nil
}
