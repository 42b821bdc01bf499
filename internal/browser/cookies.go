// Package browser pulls session cookies out of locally installed browsers.
// Solved status only renders for a logged-in session, so extraction against
// a cold fetch would always report unsolved without these cookies.
package browser

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/browserutils/kooky"
	_ "github.com/browserutils/kooky/browser/all" // register all browser cookie stores
)

type BrowserType string

const (
	BrowserAuto    BrowserType = "auto"
	BrowserChrome  BrowserType = "chrome"
	BrowserFirefox BrowserType = "firefox"
	BrowserSafari  BrowserType = "safari"
)

type CookieExtractor struct {
	browserType BrowserType
}

func NewCookieExtractor(browserType BrowserType) *CookieExtractor {
	if browserType == "" {
		browserType = BrowserAuto
	}
	return &CookieExtractor{browserType: browserType}
}

// ExtractCookies returns the cookies the configured browser holds for the
// target URL's domain, including parent-domain cookies.
func (ce *CookieExtractor) ExtractCookies(ctx context.Context, targetURL string) ([]*http.Cookie, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	host := parsed.Hostname()

	var cookies []*http.Cookie
	for cookie, err := range kooky.TraverseCookies(ctx) {
		if err != nil {
			continue
		}
		if !ce.matchesBrowser(cookie.Browser) || !domainMatches(cookie.Domain, host) {
			continue
		}
		cookies = append(cookies, &http.Cookie{
			Name:     cookie.Name,
			Value:    cookie.Value,
			Path:     cookie.Path,
			Domain:   cookie.Domain,
			Expires:  cookie.Expires,
			Secure:   cookie.Secure,
			HttpOnly: cookie.HttpOnly,
		})
	}
	return cookies, nil
}

func (ce *CookieExtractor) matchesBrowser(info kooky.BrowserInfo) bool {
	if ce.browserType == BrowserAuto {
		return true
	}
	name := strings.ToLower(info.Browser())
	switch ce.browserType {
	case BrowserChrome:
		return strings.Contains(name, "chrome") || strings.Contains(name, "chromium")
	case BrowserFirefox:
		return strings.Contains(name, "firefox")
	case BrowserSafari:
		return strings.Contains(name, "safari")
	}
	return false
}

func domainMatches(cookieDomain, targetHost string) bool {
	if cookieDomain == "" || targetHost == "" {
		return false
	}
	cookieDomain = strings.TrimPrefix(cookieDomain, ".")
	return cookieDomain == targetHost || strings.HasSuffix(targetHost, "."+cookieDomain)
}
