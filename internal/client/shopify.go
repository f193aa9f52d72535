package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"autologic-fitment-api/internal/model"
)

// ShopifyConfig holds the storefront search provider parameters.
type ShopifyConfig struct {
	// Domain is the primary storefront domain (e.g. autologic.mx).
	Domain string
	// FallbackDomain is the myshopify.com domain tried when the primary
	// storefront does not answer.
	FallbackDomain string
	APIVersion     string
	AccessToken    string
	// Timeout bounds one provider call end to end.
	Timeout time.Duration
	// RateLimit is the sustained requests-per-second ceiling.
	RateLimit float64
	// PageSize caps results per query.
	PageSize int
}

// ShopifyClient searches the storefront product catalog. The REST products
// endpoint is tried first on both domains; the Storefront GraphQL endpoint is
// the last resort. All responses are mapped to the same flat result tuple.
type ShopifyClient struct {
	cfg        ShopifyConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewShopifyClient(cfg ShopifyConfig) *ShopifyClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 4
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	return &ShopifyClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
	}
}

func (c *ShopifyClient) Name() string { return "shopify" }

// Search issues one text query against the catalog. The caller decides what
// a failure means; this method just reports it.
func (c *ShopifyClient) Search(ctx context.Context, query string) ([]model.SearchResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	results, restErr := c.searchREST(ctx, c.cfg.Domain, query)
	if restErr == nil {
		return results, nil
	}

	if c.cfg.FallbackDomain != "" && c.cfg.FallbackDomain != c.cfg.Domain {
		results, err := c.searchREST(ctx, c.cfg.FallbackDomain, query)
		if err == nil {
			return results, nil
		}
	}

	results, gqlErr := c.searchGraphQL(ctx, query)
	if gqlErr != nil {
		return nil, fmt.Errorf("shopify search %q: rest: %w, graphql: %v", query, restErr, gqlErr)
	}
	return results, nil
}

// restProduct is the wire shape of the REST products endpoint.
type restProduct struct {
	ID       json.Number `json:"id"`
	Title    string      `json:"title"`
	Handle   string      `json:"handle"`
	BodyHTML string      `json:"body_html"`
	Image    *struct {
		Src string `json:"src"`
		Alt string `json:"alt"`
	} `json:"image"`
	Variants []struct {
		ID    json.Number `json:"id"`
		Price string      `json:"price"`
	} `json:"variants"`
}

func (c *ShopifyClient) searchREST(ctx context.Context, domain, query string) ([]model.SearchResult, error) {
	endpoint := fmt.Sprintf("https://%s/api/%s/products.json?limit=%d", domain, c.cfg.APIVersion, c.cfg.PageSize)
	if strings.TrimSpace(query) != "" {
		endpoint += "&title=" + url.QueryEscape(query)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Products []restProduct `json:"products"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse products response: %w", err)
	}

	results := make([]model.SearchResult, 0, len(payload.Products))
	for _, p := range payload.Products {
		r := model.SearchResult{
			ID:          p.ID.String(),
			Title:       p.Title,
			Handle:      p.Handle,
			Description: p.BodyHTML,
			ImageAlt:    p.Title,
			Price:       "0",
		}
		if p.Image != nil {
			r.Image = p.Image.Src
			if p.Image.Alt != "" {
				r.ImageAlt = p.Image.Alt
			}
		}
		if len(p.Variants) > 0 {
			r.Price = p.Variants[0].Price
			r.VariantID = p.Variants[0].ID.String()
		}
		results = append(results, r)
	}
	return results, nil
}

const graphQLProductsQuery = `query($query: String!, $first: Int!) {
  products(first: $first, query: $query) {
    edges {
      node {
        id
        title
        handle
        description
        images(first: 1) { edges { node { originalSrc altText } } }
        variants(first: 1) { edges { node { id price { amount } } } }
      }
    }
  }
}`

func (c *ShopifyClient) searchGraphQL(ctx context.Context, query string) ([]model.SearchResult, error) {
	endpoint := fmt.Sprintf("https://%s/api/%s/graphql.json", c.cfg.Domain, c.cfg.APIVersion)

	reqBody, err := json.Marshal(map[string]any{
		"query": graphQLProductsQuery,
		"variables": map[string]any{
			"query": query,
			"first": c.cfg.PageSize,
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Shopify-Storefront-Access-Token", c.cfg.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
		Data struct {
			Products struct {
				Edges []struct {
					Node struct {
						ID          string `json:"id"`
						Title       string `json:"title"`
						Handle      string `json:"handle"`
						Description string `json:"description"`
						Images      struct {
							Edges []struct {
								Node struct {
									OriginalSrc string `json:"originalSrc"`
									AltText     string `json:"altText"`
								} `json:"node"`
							} `json:"edges"`
						} `json:"images"`
						Variants struct {
							Edges []struct {
								Node struct {
									ID    string `json:"id"`
									Price struct {
										Amount string `json:"amount"`
									} `json:"price"`
								} `json:"node"`
							} `json:"edges"`
						} `json:"variants"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"products"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse graphql response: %w", err)
	}
	if len(payload.Errors) > 0 {
		return nil, fmt.Errorf("graphql error: %s", payload.Errors[0].Message)
	}

	results := make([]model.SearchResult, 0, len(payload.Data.Products.Edges))
	for _, edge := range payload.Data.Products.Edges {
		node := edge.Node
		r := model.SearchResult{
			ID:          node.ID,
			Title:       node.Title,
			Handle:      node.Handle,
			Description: node.Description,
			ImageAlt:    node.Title,
			Price:       "0",
		}
		if len(node.Images.Edges) > 0 {
			r.Image = node.Images.Edges[0].Node.OriginalSrc
			if alt := node.Images.Edges[0].Node.AltText; alt != "" {
				r.ImageAlt = alt
			}
		}
		if len(node.Variants.Edges) > 0 {
			r.VariantID = node.Variants.Edges[0].Node.ID
			if amount := node.Variants.Edges[0].Node.Price.Amount; amount != "" {
				r.Price = amount
			}
		}
		results = append(results, r)
	}
	return results, nil
}

func (c *ShopifyClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}
	return body, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
