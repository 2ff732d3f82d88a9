// Package hashnode is a minimal client for the Hashnode GraphQL API,
// covering publication lookup and post publishing.
package hashnode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultAPIURL = "https://gql.hashnode.com"

// ErrNoPublication is returned when the API key's account has no
// publications to publish into.
var ErrNoPublication = errors.New("hashnode: account has no publications")

type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

func NewClient(apiKey, apiURL string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiKey:     apiKey,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
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
	Errors []graphqlError  `json:"errors"`
}

// do posts a GraphQL request and decodes the data payload into dest.
// Hashnode expects the API key bare in the Authorization header, without
// a Bearer prefix.
func (c *Client) do(ctx context.Context, query string, variables map[string]any, dest any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("hashnode: unexpected status %d", resp.StatusCode)
	}

	var gr graphqlResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return fmt.Errorf("hashnode: decoding response: %w", err)
	}
	if len(gr.Errors) > 0 {
		return fmt.Errorf("hashnode: %s", gr.Errors[0].Message)
	}
	return json.Unmarshal(gr.Data, dest)
}

// Publication is a blog owned by the account behind the API key.
type Publication struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Publications lists the account's publications.
func (c *Client) Publications(ctx context.Context) ([]Publication, error) {
	const query = `query Me {
		me {
			publications(first: 10) {
				edges { node { id title url } }
			}
		}
	}`

	var out struct {
		Me struct {
			Publications struct {
				Edges []struct {
					Node Publication `json:"node"`
				} `json:"edges"`
			} `json:"publications"`
		} `json:"me"`
	}
	if err := c.do(ctx, query, nil, &out); err != nil {
		return nil, err
	}

	publications := make([]Publication, 0, len(out.Me.Publications.Edges))
	for _, edge := range out.Me.Publications.Edges {
		publications = append(publications, edge.Node)
	}
	return publications, nil
}

// DefaultPublication returns the ID of the first publication owned by the
// account behind the API key.
func (c *Client) DefaultPublication(ctx context.Context) (string, error) {
	publications, err := c.Publications(ctx)
	if err != nil {
		return "", err
	}
	if len(publications) == 0 {
		return "", ErrNoPublication
	}
	return publications[0].ID, nil
}

// PublishedPost is the subset of Hashnode's post object the application
// persists after a successful publish.
type PublishedPost struct {
	ID  string
	URL string
}

// PublishPost creates a new post in the given publication.
func (c *Client) PublishPost(ctx context.Context, publicationID, title, contentMarkdown string) (*PublishedPost, error) {
	const mutation = `mutation PublishPost($input: PublishPostInput!) {
		publishPost(input: $input) {
			post { id url }
		}
	}`

	variables := map[string]any{
		"input": map[string]any{
			"publicationId":   publicationID,
			"title":           title,
			"contentMarkdown": contentMarkdown,
		},
	}

	var out struct {
		PublishPost struct {
			Post struct {
				ID  string `json:"id"`
				URL string `json:"url"`
			} `json:"post"`
		} `json:"publishPost"`
	}
	if err := c.do(ctx, mutation, variables, &out); err != nil {
		return nil, err
	}
	return &PublishedPost{
		ID:  out.PublishPost.Post.ID,
		URL: out.PublishPost.Post.URL,
	}, nil
}
