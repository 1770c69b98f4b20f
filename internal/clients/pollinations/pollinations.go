package pollinations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yungbote/repurpose-backend/internal/pkg/logger"
)

const upstreamHost = "gen.pollinations.ai"

// URLParams selects the rendered image shape. Seed 0 means unseeded.
type URLParams struct {
	Width  int
	Height int
	Model  string
	Seed   int
}

// BuildImageURL builds the documented upstream URL:
//
//	https://gen.pollinations.ai/image/{encoded_prompt}?width=...&height=...&model=...&safe=true[&seed=...]
//
// The prompt is fully percent-encoded, spaces included, so the URL survives
// storage and re-fetch byte for byte.
func BuildImageURL(prompt string, p URLParams) string {
	encoded := strings.ReplaceAll(url.QueryEscape(prompt), "+", "%20")

	var b strings.Builder
	b.WriteString("https://" + upstreamHost + "/image/")
	b.WriteString(encoded)
	b.WriteString("?width=" + strconv.Itoa(p.Width))
	b.WriteString("&height=" + strconv.Itoa(p.Height))
	b.WriteString("&model=" + p.Model)
	b.WriteString("&safe=true")
	if p.Seed > 0 {
		b.WriteString("&seed=" + strconv.Itoa(p.Seed))
	}
	return b.String()
}

// Client fetches rendered images from the upstream host so the frontend
// never talks to it directly.
type Client interface {
	Fetch(ctx context.Context, upstreamURL string) ([]byte, string, error)
}

type client struct {
	log        *logger.Logger
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	timeoutSec := 90
	if v := os.Getenv("POLLINATIONS_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	return &client{
		log:        log.With("service", "PollinationsClient"),
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

type pollinationsHTTPError struct {
	StatusCode int
	Body       string
}

func (e *pollinationsHTTPError) Error() string {
	return fmt.Sprintf("pollinations http %d: %s", e.StatusCode, e.Body)
}

func (e *pollinationsHTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

// Fetch downloads the image at upstreamURL and returns the bytes plus the
// content type. Only URLs pointing at the known upstream host are allowed;
// stored metadata is caller-visible and must not turn the proxy into an
// open relay.
func (c *client) Fetch(ctx context.Context, upstreamURL string) ([]byte, string, error) {
	parsed, err := url.Parse(upstreamURL)
	if err != nil {
		return nil, "", fmt.Errorf("invalid upstream url: %w", err)
	}
	if parsed.Scheme != "https" || parsed.Host != upstreamHost {
		return nil, "", fmt.Errorf("refusing to fetch non-upstream url host %q", parsed.Host)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, upstreamURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, "", readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &pollinationsHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return raw, contentType, nil
}
