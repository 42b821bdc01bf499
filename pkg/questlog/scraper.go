// Package questlog wires the fetch, parse and extraction stages into a
// single entry point for scraping problem metadata from a URL.
package questlog

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/questlog/questlog/internal/browser"
	"github.com/questlog/questlog/internal/config"
	"github.com/questlog/questlog/internal/extractor"
	"github.com/questlog/questlog/internal/fetcher"
	"github.com/questlog/questlog/internal/processor"
)

type Scraper struct {
	config   *config.Config
	fetcher  *fetcher.Fetcher
	cookies  *browser.CookieExtractor
	registry *extractor.Registry
	renderer *processor.Renderer
}

type ScrapeOptions struct {
	UseJS            *bool // nil = auto, true = force, false = disable
	Timeout          time.Duration
	BrowserAgent     string
	IncludeStatement bool
}

type ScrapeResult struct {
	Report         *processor.Report
	UsedJavaScript bool
	ProcessingTime time.Duration
}

func New(cfg *config.Config) *Scraper {
	return &Scraper{
		config:   cfg,
		fetcher:  fetcher.New(),
		cookies:  browser.NewCookieExtractor(browser.BrowserType(cfg.Browser.Default)),
		registry: extractor.DefaultRegistry(),
		renderer: processor.NewRenderer(),
	}
}

// Scrape fetches the page at rawURL and extracts problem metadata from it.
// Cookie extraction happens best-effort: without a logged-in session the
// scrape still works, it just cannot see solved status.
func (s *Scraper) Scrape(ctx context.Context, rawURL string, opts ScrapeOptions) (*ScrapeResult, error) {
	start := time.Now()

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if pageURL.Scheme != "http" && pageURL.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URL scheme %q", pageURL.Scheme)
	}

	cookies, err := s.cookies.ExtractCookies(ctx, rawURL)
	if err != nil {
		cookies = nil
	}

	fetchMode := fetcher.FetchModeAuto
	if opts.UseJS != nil {
		if *opts.UseJS {
			fetchMode = fetcher.FetchModeJS
		} else {
			fetchMode = fetcher.FetchModeStatic
		}
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Duration(s.config.Network.Timeout) * time.Second
	}

	fetchResult, err := s.fetcher.Fetch(ctx, rawURL, fetcher.FetchOptions{
		Mode:            fetchMode,
		Timeout:         timeout,
		UserAgent:       s.config.Network.UserAgent,
		BrowserAgent:    opts.BrowserAgent,
		Cookies:         cookies,
		WaitForSelector: s.config.Rendering.WaitForSelector,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fetchResult.HTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	result := s.registry.Extract(doc, pageURL)
	report := &processor.Report{Result: result}
	if opts.IncludeStatement {
		report.Statement = s.renderer.Statement(fetchResult.HTML)
	}

	return &ScrapeResult{
		Report:         report,
		UsedJavaScript: fetchResult.UsedJS,
		ProcessingTime: time.Since(start),
	}, nil
}

// IsProblemPage reports whether rawURL points at a recognized problem page.
func (s *Scraper) IsProblemPage(rawURL string) bool {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return s.registry.IsProblemPage(pageURL)
}

// Renderer exposes the output renderer for callers formatting reports.
func (s *Scraper) Renderer() *processor.Renderer {
	return s.renderer
}
