package scraper

// DefaultSources lists the aggregator pages scraped by the ingestion job.
// Selectors track each site's listing markup and need updating when a site
// ships a redesign.
var DefaultSources = []Source{
	{
		Platform: "Devpost",
		URL:      "https://devpost.com/hackathons",
		Selectors: SelectorSet{
			Card:      "div.hackathon-tile",
			Title:     "h3.mb-4",
			Organizer: "div.host span.label",
			Link:      "a.tile-anchor",
			Start:     "div.submission-period time:first-of-type",
			End:       "div.submission-period time:last-of-type",
			Deadline:  "div.submission-period time:first-of-type",
			Prize:     "div.prize span.prize-amount",
			Theme:     "span.theme-label",
			Location:  "div.info-with-icon .info span",
			Mode:      "div.info-with-icon .info span",
		},
	},
	{
		Platform: "Devfolio",
		URL:      "https://devfolio.co/hackathons",
		Selectors: SelectorSet{
			Card:      "div[data-testid='hackathon-card']",
			Title:     "h3",
			Organizer: "p[data-testid='organizer']",
			Link:      "a[href]",
			Start:     "time[data-testid='starts-at']",
			End:       "time[data-testid='ends-at']",
			Deadline:  "time[data-testid='registration-closes']",
			Prize:     "span[data-testid='prize-pool']",
			Theme:     "span[data-testid='theme']",
			Location:  "span[data-testid='location']",
			Mode:      "span[data-testid='mode']",
		},
	},
}
