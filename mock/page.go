package mock

import (
	"context"

	"github.com/fwojciec/profscrape"
)

// Compile-time interface verification.
var (
	_ profscrape.Page    = (*Page)(nil)
	_ profscrape.Node    = (*Node)(nil)
	_ profscrape.Session = (*Session)(nil)
)

// Page is a mock implementation of profscrape.Page.
type Page struct {
	NavigateFn func(ctx context.Context, url string) error
	URLFn      func() string
	FindFn     func(ctx context.Context, selector string) (profscrape.Node, error)
	FindAllFn  func(ctx context.Context, selector string) ([]profscrape.Node, error)
	ClickFn    func(ctx context.Context, selector string) error
	WaitForFn  func(ctx context.Context, selector string) error
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	return p.NavigateFn(ctx, url)
}

func (p *Page) URL() string {
	return p.URLFn()
}

func (p *Page) Find(ctx context.Context, selector string) (profscrape.Node, error) {
	return p.FindFn(ctx, selector)
}

func (p *Page) FindAll(ctx context.Context, selector string) ([]profscrape.Node, error) {
	return p.FindAllFn(ctx, selector)
}

func (p *Page) Click(ctx context.Context, selector string) error {
	return p.ClickFn(ctx, selector)
}

func (p *Page) WaitFor(ctx context.Context, selector string) error {
	return p.WaitForFn(ctx, selector)
}

// Node is a mock implementation of profscrape.Node.
type Node struct {
	TextFn func() (string, error)
	AttrFn func(name string) (string, error)
	FindFn func(selector string) (profscrape.Node, error)
}

func (n *Node) Text() (string, error) {
	return n.TextFn()
}

func (n *Node) Attr(name string) (string, error) {
	return n.AttrFn(name)
}

func (n *Node) Find(selector string) (profscrape.Node, error) {
	return n.FindFn(selector)
}

// Session is a mock implementation of profscrape.Session.
type Session struct {
	RunInSessionFn func(ctx context.Context, targetURL string, fn profscrape.PipelineFunc) (*profscrape.Profile, error)
}

func (s *Session) RunInSession(ctx context.Context, targetURL string, fn profscrape.PipelineFunc) (*profscrape.Profile, error) {
	return s.RunInSessionFn(ctx, targetURL, fn)
}
