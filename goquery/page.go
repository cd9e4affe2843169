package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/profscrape"
)

// Ensure Page implements profscrape.Page at compile time.
var _ profscrape.Page = (*Page)(nil)

// Page is a profscrape.Page over a static HTML document.
//
// Clicking and waiting cannot change a static document, so Click and
// WaitFor only verify that the selector matches: everything a live page
// would reveal is assumed to be present in the markup already.
type Page struct {
	fetcher profscrape.Fetcher
	url     string
	doc     *goquery.Document
}

// NewPage returns an unloaded Page that loads documents through fetcher.
func NewPage(fetcher profscrape.Fetcher) *Page {
	return &Page{fetcher: fetcher}
}

// ParsePage returns a Page already loaded with html as served from url.
func ParsePage(url, html string) (*Page, error) {
	p := &Page{}
	if err := p.load(url, html); err != nil {
		return nil, err
	}
	return p, nil
}

// Navigate fetches url and replaces the current document.
func (p *Page) Navigate(ctx context.Context, url string) error {
	if p.fetcher == nil {
		return profscrape.Errorf(profscrape.EINVALID, "static page has no fetcher")
	}
	snap, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	finalURL := snap.URL
	if finalURL == "" {
		finalURL = url
	}
	return p.load(finalURL, snap.HTML)
}

func (p *Page) load(url, html string) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return profscrape.Errorf(profscrape.EINVALID, "failed to parse HTML: %v", err)
	}
	p.url = url
	p.doc = doc
	return nil
}

// URL returns the URL the current document was served from.
func (p *Page) URL() string {
	return p.url
}

// Find returns the first node matching selector.
func (p *Page) Find(ctx context.Context, selector string) (profscrape.Node, error) {
	if err := p.ready(ctx); err != nil {
		return nil, err
	}
	return find(p.doc.Selection, selector)
}

// FindAll returns all nodes matching selector in document order.
func (p *Page) FindAll(ctx context.Context, selector string) ([]profscrape.Node, error) {
	if err := p.ready(ctx); err != nil {
		return nil, err
	}
	sel := p.doc.Find(selector)
	nodes := make([]profscrape.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		nodes = append(nodes, &Node{sel: s})
	})
	return nodes, nil
}

// Click reports whether the selector matches; a static document has
// nothing to activate.
func (p *Page) Click(ctx context.Context, selector string) error {
	_, err := p.Find(ctx, selector)
	return err
}

// WaitFor reports whether the selector matches. A static document never
// changes, so there is nothing to wait for.
func (p *Page) WaitFor(ctx context.Context, selector string) error {
	_, err := p.Find(ctx, selector)
	return err
}

func (p *Page) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.doc == nil {
		return profscrape.Errorf(profscrape.EINVALID, "page not loaded")
	}
	return nil
}

// Ensure Node implements profscrape.Node at compile time.
var _ profscrape.Node = (*Node)(nil)

// Node is a single element of a static document.
type Node struct {
	sel *goquery.Selection
}

// Text returns the element's text content, trimmed.
func (n *Node) Text() (string, error) {
	return strings.TrimSpace(n.sel.Text()), nil
}

// Attr returns the named attribute.
func (n *Node) Attr(name string) (string, error) {
	v, ok := n.sel.Attr(name)
	if !ok {
		return "", profscrape.Errorf(profscrape.ENOTFOUND, "attribute %q not found", name)
	}
	return v, nil
}

// Find returns the first descendant matching selector.
func (n *Node) Find(selector string) (profscrape.Node, error) {
	return find(n.sel, selector)
}

func find(root *goquery.Selection, selector string) (profscrape.Node, error) {
	sel := root.Find(selector).First()
	if sel.Length() == 0 {
		return nil, profscrape.Errorf(profscrape.ENOTFOUND, "no element matches %q", selector)
	}
	return &Node{sel: sel}, nil
}
