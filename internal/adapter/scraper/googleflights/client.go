// Package googleflights scrapes round-trip offers from the Google Flights
// search surface through a headless browser. One client owns one browser
// session; searches run strictly one at a time.
package googleflights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/memoryleak07/GFScraper/internal/domain"
	"github.com/memoryleak07/GFScraper/internal/infrastructure/logger"
	"github.com/memoryleak07/GFScraper/internal/infrastructure/retry"
)

// defaultSearchTimeout bounds a search when the caller supplies no deadline.
const defaultSearchTimeout = 30 * time.Second

// messageTimeout bounds the secondary reads on an already loaded page, such
// as the no-flights explanation or the consent dialog.
const messageTimeout = 2 * time.Second

// Options configures the browser session.
type Options struct {
	// Headless runs the browser without a visible window.
	Headless bool

	// UserAgent overrides the browser user agent when non-empty.
	UserAgent string

	// FastMode skips opening the first result for return-leg details.
	FastMode bool
}

// Client drives a Chromium session against Google Flights.
type Client struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
	log     *logger.Logger
}

// session bundles the driver and the launched browser so both can be
// acquired in one retryable step.
type session struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewClient starts the browser session. A cold start may be slow or flaky,
// so acquisition is retried; the session itself is never restarted during a
// run. The caller must Close the client when done.
func NewClient(ctx context.Context, opts Options, log *logger.Logger) (*Client, error) {
	if log == nil {
		log = logger.Nop()
	}

	s, err := retry.DoWithResult(ctx, func() (session, error) {
		return launch(opts)
	}, retry.SessionConfig)
	if err != nil {
		return nil, fmt.Errorf("start browser session: %w", err)
	}

	log.Info().Bool("headless", opts.Headless).Bool("fast_mode", opts.FastMode).Msg("Browser session started")
	return &Client{pw: s.pw, browser: s.browser, opts: opts, log: log}, nil
}

func launch(opts Options) (session, error) {
	pw, err := playwright.Run()
	if err != nil {
		return session{}, fmt.Errorf("start playwright driver: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	})
	if err != nil {
		pw.Stop()
		return session{}, fmt.Errorf("launch chromium: %w", err)
	}

	return session{pw: pw, browser: browser}, nil
}

// Close shuts down the browser and the driver.
func (c *Client) Close() error {
	if err := c.browser.Close(); err != nil {
		return fmt.Errorf("close browser: %w", err)
	}
	if err := c.pw.Stop(); err != nil {
		return fmt.Errorf("stop playwright driver: %w", err)
	}
	return nil
}

// Search implements domain.ScrapeClient. Each search runs in a fresh
// browser context so one combination's page state never leaks into the
// next.
func (c *Client) Search(ctx context.Context, pair domain.AirportPair, window domain.DateWindow) (domain.Outcome, error) {
	timeout := defaultSearchTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}

	bctx, err := c.newContext(timeout)
	if err != nil {
		return domain.Outcome{}, err
	}
	defer bctx.Close()

	page, err := bctx.NewPage()
	if err != nil {
		return domain.Outcome{}, fmt.Errorf("open page: %w", err)
	}

	url := SearchURL(pair, window, "")
	c.log.Debug().Str("url", url).Msg("Navigating")

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return domain.Outcome{}, classify("navigate", err)
	}
	c.dismissConsent(page)

	price := page.Locator(xpPrice)
	if err := price.WaitFor(); err != nil {
		// No priced result appeared within the timeout. A visible
		// explanation means the combination genuinely has no flights;
		// otherwise the page never settled.
		if msg, ok := c.noFlightsMessage(page); ok {
			return domain.NotFound(msg), nil
		}
		return domain.Outcome{}, classify("wait for results", err)
	}

	priceText, err := price.InnerText()
	if err != nil {
		return domain.Outcome{}, classify("read price", err)
	}
	airlineText, err := page.Locator(xpAirline).InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(ms(messageTimeout)),
	})
	if err != nil {
		airlineText = ""
	}

	outcome := domain.Found(strings.TrimSpace(priceText), strings.TrimSpace(airlineText))
	if c.opts.FastMode {
		return outcome, nil
	}
	return c.withReturnDetail(page, outcome), nil
}

// newContext creates an isolated browser context whose default timeout
// matches the remaining search budget.
func (c *Client) newContext(timeout time.Duration) (playwright.BrowserContext, error) {
	opts := playwright.BrowserNewContextOptions{}
	if c.opts.UserAgent != "" {
		opts.UserAgent = playwright.String(c.opts.UserAgent)
	}

	bctx, err := c.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("new browser context: %w", err)
	}
	bctx.SetDefaultTimeout(ms(timeout))
	bctx.SetDefaultNavigationTimeout(ms(timeout))
	return bctx, nil
}

// withReturnDetail opens the first result and reads the return leg's
// duration and stop count. The detail step is best effort: the outbound
// offer stands on its own if the detail page misbehaves.
func (c *Client) withReturnDetail(page playwright.Page, outcome domain.Outcome) domain.Outcome {
	if err := page.Locator(xpFirstResult).Click(); err != nil {
		c.log.Warn().Err(err).Msg("Could not open return-leg details")
		return outcome
	}

	duration := page.Locator(xpDuration)
	if err := duration.WaitFor(); err != nil {
		c.log.Warn().Err(err).Msg("Return-leg details did not load")
		return outcome
	}

	durationText, err := duration.InnerText()
	if err != nil {
		return outcome
	}
	stopsText, err := page.Locator(xpStops).InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(ms(messageTimeout)),
	})
	if err != nil {
		stopsText = ""
	}

	return outcome.WithReturnDetail(strings.TrimSpace(durationText), strings.TrimSpace(stopsText))
}

// noFlightsMessage reads the explanation Google shows instead of a results
// list, when there is one.
func (c *Client) noFlightsMessage(page playwright.Page) (string, bool) {
	msg, err := page.Locator(xpNoFlightsMessage).InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(ms(messageTimeout)),
	})
	if err != nil {
		return "", false
	}
	msg = strings.TrimSpace(msg)
	return msg, msg != ""
}

// dismissConsent accepts the cookie dialog shown on fresh sessions. Absence
// of the dialog is the common case and not an error.
func (c *Client) dismissConsent(page playwright.Page) {
	err := page.Locator(xpConsentButton).Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(ms(messageTimeout)),
	})
	if err == nil {
		c.log.Debug().Msg("Consent dialog dismissed")
	}
}

// classify maps a browser fault to the domain error taxonomy: timeouts are
// recorded and skipped by the caller, anything else becomes an error record.
func classify(op string, err error) error {
	if errors.Is(err, playwright.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %v", domain.ErrScrapeTimeout, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// ms converts a duration to the millisecond float the browser API expects.
func ms(d time.Duration) float64 {
	return float64(d.Milliseconds())
}

var _ domain.ScrapeClient = (*Client)(nil)
