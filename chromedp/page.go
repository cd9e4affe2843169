package chromedp

import (
	"context"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/fwojciec/profscrape"
	"github.com/fwojciec/profscrape/goquery"
)

// Ensure Page implements profscrape.Page at compile time.
var _ profscrape.Page = (*Page)(nil)

// Page drives one browser tab. Clicks and waits run against the live DOM;
// lookups run against an HTML snapshot of it that is retaken after every
// action that may have changed the document.
type Page struct {
	tabCtx context.Context

	mu       sync.Mutex
	snapshot *goquery.Page
}

func newPage(tabCtx context.Context) *Page {
	return &Page{tabCtx: tabCtx}
}

// Navigate loads url and waits for the networkIdle lifecycle event of the
// document the navigation committed, or for ctx, whichever comes first.
// Idle events of other frames and of earlier documents are ignored.
func (p *Page) Navigate(ctx context.Context, url string) error {
	p.invalidate()

	type loadKey struct {
		frame  cdp.FrameID
		loader cdp.LoaderID
	}
	var (
		mu   sync.Mutex
		idle = make(map[loadKey]bool)
	)
	notify := make(chan struct{}, 1)

	listenCtx, cancel := context.WithCancel(p.tabCtx)
	defer cancel()
	chromedp.ListenTarget(listenCtx, func(ev any) {
		e, ok := ev.(*page.EventLifecycleEvent)
		if !ok || e.Name != "networkIdle" {
			return
		}
		mu.Lock()
		idle[loadKey{e.FrameID, e.LoaderID}] = true
		mu.Unlock()
		select {
		case notify <- struct{}{}:
		default:
		}
	})

	var nav page.NavigateReturns
	if err := p.run(ctx,
		page.SetLifecycleEventsEnabled(true),
		chromedp.ActionFunc(func(ctx context.Context) error {
			return cdp.Execute(ctx, page.CommandNavigate, page.Navigate(url), &nav)
		}),
	); err != nil {
		return err
	}
	if nav.ErrorText != "" {
		return fmt.Errorf("navigating to %s: %s", url, nav.ErrorText)
	}
	// Same-document navigations commit no new loader.
	if nav.LoaderID == "" {
		return nil
	}

	want := loadKey{nav.FrameID, nav.LoaderID}
	for {
		mu.Lock()
		done := idle[want]
		mu.Unlock()
		if done {
			return nil
		}
		select {
		case <-notify:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// URL returns the tab's current location.
func (p *Page) URL() string {
	var u string
	if err := chromedp.Run(p.tabCtx, chromedp.Location(&u)); err != nil {
		return ""
	}
	return u
}

// Find returns the first element matching selector in the current DOM.
func (p *Page) Find(ctx context.Context, selector string) (profscrape.Node, error) {
	snap, err := p.current(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Find(ctx, selector)
}

// FindAll returns every element matching selector in the current DOM.
func (p *Page) FindAll(ctx context.Context, selector string) ([]profscrape.Node, error) {
	snap, err := p.current(ctx)
	if err != nil {
		return nil, err
	}
	return snap.FindAll(ctx, selector)
}

// Click waits for selector to become visible and clicks it.
func (p *Page) Click(ctx context.Context, selector string) error {
	defer p.invalidate()
	return p.run(ctx, chromedp.Click(selector, chromedp.ByQuery))
}

// WaitFor blocks until selector is present in the DOM.
func (p *Page) WaitFor(ctx context.Context, selector string) error {
	defer p.invalidate()
	return p.run(ctx, chromedp.WaitReady(selector, chromedp.ByQuery))
}

// current returns the DOM snapshot, taking a new one if needed.
func (p *Page) current(ctx context.Context) (*goquery.Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.snapshot != nil {
		return p.snapshot, nil
	}

	var url, html string
	if err := p.run(ctx,
		chromedp.Location(&url),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	); err != nil {
		return nil, err
	}
	snap, err := goquery.ParsePage(url, html)
	if err != nil {
		return nil, err
	}
	p.snapshot = snap
	return snap, nil
}

func (p *Page) invalidate() {
	p.mu.Lock()
	p.snapshot = nil
	p.mu.Unlock()
}

// run executes actions on the tab, aborting them when ctx ends.
func (p *Page) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(p.tabCtx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
