package scraper

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hackmyway/hackmyway/internal/hackathon"
	"github.com/hackmyway/hackmyway/internal/models"
	"github.com/hackmyway/hackmyway/internal/util"
)

const maxScrapeRetries = 3

// Source describes one aggregator listing page and the selectors that locate
// listing fields within it.
type Source struct {
	Platform  string
	URL       string
	Selectors SelectorSet
}

// SelectorSet holds the CSS selectors for one source's listing cards.
type SelectorSet struct {
	Card      string
	Title     string
	Organizer string
	Link      string
	Start     string
	End       string
	Deadline  string
	Prize     string
	Theme     string
	Location  string
	Mode      string
}

// Scraper fetches aggregator pages and extracts hackathon listings.
type Scraper interface {
	ScrapeSource(ctx context.Context, src Source) ([]models.Hackathon, error)
	ScrapeAll(ctx context.Context, sources []Source) []models.Hackathon
}

type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

func New() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		// Politeness cap across all sources.
		limiter: rate.NewLimiter(rate.Limit(1), 2),
	}
}

// ScrapeSource fetches one source page with retries and parses its listing
// cards. Individual card parse failures are diagnostics, not errors.
func (c *Client) ScrapeSource(ctx context.Context, src Source) ([]models.Hackathon, error) {
	var listings []models.Hackathon

	err := util.RetryWithBackoff(ctx, maxScrapeRetries, func(attempt int) error {
		if attempt > 0 {
			slog.Warn("Retrying source scrape", "platform", src.Platform, "attempt", attempt)
		}
		var err error
		listings, err = c.attemptScrape(ctx, src)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scrape %s: %w", src.Platform, err)
	}
	return listings, nil
}

// ScrapeAll fetches every source concurrently and merges the results.
// A failing source is logged and skipped; the rest still contribute.
func (c *Client) ScrapeAll(ctx context.Context, sources []Source) []models.Hackathon {
	var (
		g       errgroup.Group
		results = make([][]models.Hackathon, len(sources))
	)
	for i, src := range sources {
		g.Go(func() error {
			listings, err := c.ScrapeSource(ctx, src)
			if err != nil {
				slog.Error("Source scrape failed", "platform", src.Platform, "error", err)
				return nil
			}
			results[i] = listings
			return nil
		})
	}
	_ = g.Wait()

	var merged []models.Hackathon
	for _, r := range results {
		merged = append(merged, r...)
	}
	return merged
}

func (c *Client) attemptScrape(ctx context.Context, src Source) ([]models.Hackathon, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", src.URL, err)
	}
	req.Header.Set("User-Agent", "hackmyway-aggregator/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", src.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, src.URL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", src.URL, err)
	}

	return ParseListings(doc, src), nil
}

// ParseListings extracts hackathon records from a parsed source page.
func ParseListings(doc *goquery.Document, src Source) []models.Hackathon {
	sel := src.Selectors
	if doc.Find(sel.Card).Length() == 0 {
		slog.Warn("No listing cards found, page structure may have changed", "platform", src.Platform)
		return nil
	}

	var listings []models.Hackathon
	doc.Find(sel.Card).Each(func(_ int, s *goquery.Selection) {
		h := models.Hackathon{
			SourcePlatform: src.Platform,
			IsScraped:      true,
		}

		h.Title = strings.TrimSpace(s.Find(sel.Title).First().Text())
		h.OrganizerName = strings.TrimSpace(s.Find(sel.Organizer).First().Text())
		if h.OrganizerName == "" {
			h.OrganizerName = src.Platform
		}
		if href, ok := s.Find(sel.Link).First().Attr("href"); ok {
			h.SourceURL = absoluteURL(src.URL, strings.TrimSpace(href))
			h.RegistrationURL = h.SourceURL
		}

		h.StartDate = parseCardDate(s, sel.Start)
		h.EndDate = parseCardDate(s, sel.End)
		h.RegistrationDeadline = parseCardDate(s, sel.Deadline)
		h.PrizeMoney = util.ParsePrizeAmount(s.Find(sel.Prize).First().Text())
		h.Theme = strings.TrimSpace(s.Find(sel.Theme).First().Text())
		h.Location = strings.TrimSpace(s.Find(sel.Location).First().Text())

		h.Mode = models.ModeOnline
		if mode := strings.TrimSpace(s.Find(sel.Mode).First().Text()); mode != "" {
			switch strings.ToLower(mode) {
			case "offline", "in-person", "in person":
				h.Mode = models.ModeOffline
			case "hybrid":
				h.Mode = models.ModeHybrid
			}
		}

		if h.Title == "" || h.SourceURL == "" {
			slog.Info("Skipping card missing title or link", "platform", src.Platform)
			return
		}
		if h.Description == "" {
			h.Description = fmt.Sprintf("%s hackathon listed on %s.", h.Title, src.Platform)
		}
		h.ID = ListingID(src.Platform, h.SourceURL)
		listings = append(listings, h)
	})
	return listings
}

// parseCardDate reads a card's date element, preferring a machine-readable
// datetime attribute over display text. Unparsable dates degrade to the zero
// time; the classifier will keep such listings out of every bucket.
func parseCardDate(s *goquery.Selection, selector string) time.Time {
	el := s.Find(selector).First()
	if el.Length() == 0 {
		return time.Time{}
	}
	if dt, ok := el.Attr("datetime"); ok {
		if t, ok := hackathon.NormalizeDate(dt); ok {
			return t
		}
	}
	t, _ := hackathon.NormalizeDate(strings.TrimSpace(el.Text()))
	return t
}

func absoluteURL(base, href string) string {
	if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(href, "/") {
		return base + "/" + href
	}
	// Keep scheme and host only.
	if i := strings.Index(base, "://"); i >= 0 {
		if j := strings.Index(base[i+3:], "/"); j >= 0 {
			base = base[:i+3+j]
		}
	}
	return base + href
}

// ListingID derives a stable document ID from the listing's source identity,
// so repeated scrapes reconcile instead of duplicating.
func ListingID(platform, sourceURL string) string {
	hash := sha256.Sum256([]byte(platform + "|" + sourceURL))
	return hex.EncodeToString(hash[:16])
}
