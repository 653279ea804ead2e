package utcn

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/CronoXGM/Calculator-medie-UTCN/pkg/config"
	"github.com/CronoXGM/Calculator-medie-UTCN/pkg/httputil"
	"github.com/CronoXGM/Calculator-medie-UTCN/pkg/logger"
)

// browserUserAgent mimics a desktop browser. The faculty site does not
// serve documents to requests with a default library user agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0 Safari/537.36"

// Client handles communication with the UTCN Automation and Computers
// faculty site. All curriculum downloads go through this client.
type Client struct {
	httpClient   *httputil.Client
	logger       *logger.Logger
	baseURL      string
	indexPath    string
	academicYear string
}

// NewClient creates a new faculty site client
func NewClient(httpClient *httputil.Client, log *logger.Logger, cfg config.CurriculumConfig) *Client {
	return &Client{
		httpClient:   httpClient,
		logger:       log,
		baseURL:      cfg.BaseURL,
		indexPath:    cfg.IndexPath,
		academicYear: cfg.AcademicYear,
	}
}

// fetchDocument downloads a document from the faculty site
func (c *Client) fetchDocument(ctx context.Context, url string) ([]byte, error) {
	headers := map[string]string{
		"User-Agent": browserUserAgent,
		"Referer":    c.baseURL + c.indexPath,
	}

	resp, err := c.httpClient.GetWithHeaders(ctx, url, headers)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
