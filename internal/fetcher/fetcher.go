// Package fetcher retrieves problem-page HTML, either with a plain HTTP GET
// or through a headless Chrome render when the page is an unhydrated React
// shell. All three supported platforms are React apps, so the JS path is the
// common case for problem pages fetched outside a browser.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

type FetchMode string

const (
	FetchModeAuto   FetchMode = "auto"
	FetchModeStatic FetchMode = "static"
	FetchModeJS     FetchMode = "javascript"
)

type FetchOptions struct {
	Mode            FetchMode
	Timeout         time.Duration
	UserAgent       string
	BrowserAgent    string
	Cookies         []*http.Cookie
	WaitForSelector string
}

type FetchResult struct {
	HTML   string
	URL    string
	UsedJS bool
}

type Fetcher struct {
	client          *http.Client
	userAgentSelect *UserAgentSelector
}

func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgentSelect: NewUserAgentSelector(),
	}
}

// Fetch retrieves the page per the requested mode. Auto mode fetches
// statically first and escalates to a Chrome render when the HTML looks like
// an empty client-side shell.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts FetchOptions) (*FetchResult, error) {
	switch opts.Mode {
	case FetchModeStatic:
		return f.fetchStatic(ctx, url, opts)
	case FetchModeJS:
		return f.fetchWithJS(ctx, url, opts)
	}

	result, err := f.fetchStatic(ctx, url, opts)
	if err != nil {
		return nil, err
	}
	if needsHydration(result.HTML) {
		return f.fetchWithJS(ctx, url, opts)
	}
	return result, nil
}

func (f *Fetcher) fetchStatic(ctx context.Context, url string, opts FetchOptions) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = f.userAgentSelect.GetUserAgent(opts.BrowserAgent)
	}
	req.Header.Set("User-Agent", userAgent)

	// Headers that make the request look like a normal navigation; the
	// platforms serve bot traffic a stripped page otherwise.
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
	req.Header.Set("Sec-Fetch-Dest", "document")
	req.Header.Set("Sec-Fetch-Mode", "navigate")
	req.Header.Set("Sec-Fetch-Site", "none")

	for _, cookie := range opts.Cookies {
		req.AddCookie(cookie)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &FetchResult{
		HTML:   string(body),
		URL:    url,
		UsedJS: false,
	}, nil
}

func (f *Fetcher) fetchWithJS(ctx context.Context, url string, opts FetchOptions) (*FetchResult, error) {
	chromeCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	if opts.Timeout > 0 {
		chromeCtx, cancel = context.WithTimeout(chromeCtx, opts.Timeout)
		defer cancel()
	}

	tasks := []chromedp.Action{
		chromedp.Navigate(url),
	}
	if opts.WaitForSelector != "" {
		tasks = append(tasks, chromedp.WaitVisible(opts.WaitForSelector))
	} else {
		tasks = append(tasks, chromedp.WaitReady("body"))
	}

	var html string
	tasks = append(tasks, chromedp.OuterHTML("html", &html))

	if err := chromedp.Run(chromeCtx, tasks...); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	return &FetchResult{
		HTML:   html,
		URL:    url,
		UsedJS: true,
	}, nil
}

// needsHydration reports whether statically fetched HTML is a client-side
// shell whose real content only appears after scripts run.
func needsHydration(html string) bool {
	lower := strings.ToLower(html)

	// Empty React/Next mount points.
	for _, shell := range []string{
		`<div id="root"></div>`,
		`<div id="__next"></div>`,
		`<div id="app"></div>`,
	} {
		if strings.Contains(lower, shell) {
			return true
		}
	}

	if strings.Contains(lower, "data-reactroot") {
		return true
	}

	// Script-heavy page with a nearly empty body.
	if strings.Count(lower, "<script") > 5 && len(strings.TrimSpace(bodyContent(html))) < 1000 {
		return true
	}

	return false
}

func bodyContent(html string) string {
	lower := strings.ToLower(html)
	start := strings.Index(lower, "<body")
	if start == -1 {
		return html
	}
	open := strings.Index(html[start:], ">")
	if open == -1 {
		return html
	}
	start += open + 1

	end := strings.Index(lower[start:], "</body>")
	if end == -1 {
		return html[start:]
	}
	return html[start : start+end]
}
