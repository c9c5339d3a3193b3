// Package cdahd scrapes movie listings from the cda-hd site. Listing pages
// live at {base}/page/N/ and link to one detail page per movie; all fields
// come from the detail page.
package cdahd

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
)

var (
	lastPageLinkPattern = regexp.MustCompile(`(?is)<a[^>]+href=["'][^"']*/page/(\d+)/?["'][^>]*>\s*Ostatnia`)
	itemSectionPattern  = regexp.MustCompile(`(?is)<div[^>]+class=["'][^"']*item_1[^"']*["'][^>]*>(.*)`)
	itemLinkPattern     = regexp.MustCompile(`(?is)<div[^>]+class=["']item["'][^>]*>.*?<a[^>]+href=["']([^"']+)["']`)

	titlePattern       = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	descriptionPattern = regexp.MustCompile(`(?is)id=["']cap1["'].*?<p[^>]*>(.*?)</p>`)
	categoryPattern    = regexp.MustCompile(`(?is)<a[^>]+rel=["']category tag["'][^>]*>(.*?)</a>`)
	yearSpanPattern    = regexp.MustCompile(`(?is)<h1[^>]*>.*?</h1>\s*<span[^>]*>(.*?)</span>`)
	lengthPattern      = regexp.MustCompile(`(?is)class=["'][^"']*icon-time[^"']*["'][^>]*>\s*</i>([^<]*)`)
	ratingPattern      = regexp.MustCompile(`(?is)class=["'][^"']*rating[^"']*["'][^>]*>\s*<span[^>]*>([0-9.,]+)`)
	votesPattern       = regexp.MustCompile(`(?is)<b[^>]*>\s*([0-9][0-9\s]*)\s*</b>\s*g\x{0142}os`)
	countriesPattern   = regexp.MustCompile(`(?is)Kraj[^<]*</?\w*[^>]*>([^<]+)`)
	imagePattern       = regexp.MustCompile(`(?is)<img[^>]+src=["']([^"']+)["'][^>]*class=["'][^"']*poster`)

	numberPattern = regexp.MustCompile(`\d+`)
	tagStripper   = regexp.MustCompile(`(?s)<[^>]*>`)
)

// Movie is the raw payload parsed from one detail page.
type Movie struct {
	Title       string
	Description string
	ShowType    string
	Tags        []string
	Year        *int
	Length      *int
	Rating      *float64
	Votes       *int
	Countries   string
	Link        string
	ImageLink   string
}

type Client struct {
	BaseURL string
	Client  *http.Client
	// MaxConcurrent bounds parallel detail-page fetches.
	MaxConcurrent int64
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		Client:        &http.Client{Timeout: 20 * time.Second},
		MaxConcurrent: 4,
	}
}

// LastPage fetches the first listing page and reads the page count from the
// "Ostatnia" (last page) link.
func (c *Client) LastPage(ctx context.Context) (int, error) {
	body, err := c.get(ctx, c.BaseURL+"/page/1/")
	if err != nil {
		return 0, err
	}
	m := lastPageLinkPattern.FindStringSubmatch(body)
	if m == nil {
		return 0, fmt.Errorf("last page link not found")
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid last page %q", m[1])
	}
	return n, nil
}

// ListingLinks fetches one listing page and returns the detail-page links in
// page order.
func (c *Client) ListingLinks(ctx context.Context, page int) ([]string, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/page/%d/", c.BaseURL, page))
	if err != nil {
		return nil, err
	}
	section := itemSectionPattern.FindStringSubmatch(body)
	if section == nil {
		return nil, fmt.Errorf("listing section not found on page %d", page)
	}
	var links []string
	for _, m := range itemLinkPattern.FindAllStringSubmatch(section[1], -1) {
		links = append(links, m[1])
	}
	return links, nil
}

// FetchMovies walks listing pages 1..maxPages (capped by the site's own page
// count; maxPages <= 0 means all) and scrapes every linked detail page.
// Detail fetches run with bounded concurrency; result order follows the
// listing order. Pages that fail to fetch or parse are skipped.
func (c *Client) FetchMovies(ctx context.Context, maxPages int) ([]*Movie, error) {
	last, err := c.LastPage(ctx)
	if err != nil {
		return nil, err
	}
	pages := last
	if maxPages > 0 && maxPages < pages {
		pages = maxPages
	}

	var links []string
	for page := 1; page <= pages; page++ {
		ls, err := c.ListingLinks(ctx, page)
		if err != nil {
			return nil, err
		}
		links = append(links, ls...)
	}

	out := make([]*Movie, len(links))
	sem := semaphore.NewWeighted(c.maxConcurrent())
	for i, link := range links {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func(i int, link string) {
			defer sem.Release(1)
			m, err := c.FetchDetail(ctx, link)
			if err != nil {
				return
			}
			out[i] = m
		}(i, link)
	}
	if err := sem.Acquire(ctx, c.maxConcurrent()); err != nil {
		return nil, err
	}

	movies := make([]*Movie, 0, len(out))
	for _, m := range out {
		if m != nil {
			movies = append(movies, m)
		}
	}
	return movies, nil
}

// FetchDetail scrapes one movie detail page.
func (c *Client) FetchDetail(ctx context.Context, link string) (*Movie, error) {
	body, err := c.get(ctx, link)
	if err != nil {
		return nil, err
	}
	m := &Movie{ShowType: "Film", Link: link}

	t := titlePattern.FindStringSubmatch(body)
	if t == nil {
		return nil, fmt.Errorf("title not found: %s", link)
	}
	m.Title = cleanText(t[1])
	if m.Title == "" {
		return nil, fmt.Errorf("empty title: %s", link)
	}

	if d := descriptionPattern.FindStringSubmatch(body); d != nil {
		m.Description = cleanText(d[1])
	}
	for _, tag := range categoryPattern.FindAllStringSubmatch(body, -1) {
		if v := cleanText(tag[1]); v != "" {
			m.Tags = append(m.Tags, v)
		}
	}
	if s := yearSpanPattern.FindStringSubmatch(body); s != nil {
		// the span mixes dates; the release year is the last number
		if y, ok := lastNumber(cleanText(s[1])); ok && y > 1800 && y < 2200 {
			m.Year = &y
		}
	}
	if s := lengthPattern.FindStringSubmatch(body); s != nil {
		if n, ok := firstNumber(s[1]); ok {
			m.Length = &n
		}
	}
	if s := ratingPattern.FindStringSubmatch(body); s != nil {
		if r, err := strconv.ParseFloat(strings.ReplaceAll(s[1], ",", "."), 64); err == nil {
			m.Rating = &r
		}
	}
	if s := votesPattern.FindStringSubmatch(body); s != nil {
		if n, ok := firstNumber(strings.ReplaceAll(s[1], " ", "")); ok {
			m.Votes = &n
		}
	}
	if s := countriesPattern.FindStringSubmatch(body); s != nil {
		m.Countries = cleanText(s[1])
	}
	if s := imagePattern.FindStringSubmatch(body); s != nil {
		m.ImageLink = s[1]
	}
	return m, nil
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("cda-hd status %d for %s", resp.StatusCode, url)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (c *Client) maxConcurrent() int64 {
	if c.MaxConcurrent > 0 {
		return c.MaxConcurrent
	}
	return 4
}

// cleanText strips tags, unescapes entities and collapses whitespace.
func cleanText(s string) string {
	s = tagStripper.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}

func firstNumber(s string) (int, bool) {
	m := numberPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

func lastNumber(s string) (int, bool) {
	ms := numberPattern.FindAllString(s, -1)
	if len(ms) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(ms[len(ms)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}
