package rod

import (
	"context"
	"strings"

	"github.com/fwojciec/profscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Page implements profscrape.Page at compile time.
var _ profscrape.Page = (*Page)(nil)

// Page adapts a live rod page. Every operation is bound to the context it
// receives, so a field timeout aborts any in-flight browser call.
type Page struct {
	page *rod.Page
}

// Navigate loads url and waits until the network goes idle. If ctx ends
// first the wait stops early; callers check ctx to detect that.
func (p *Page) Navigate(ctx context.Context, url string) error {
	page := p.page.Context(ctx)
	wait := page.WaitNavigation(proto.PageLifecycleEventNameNetworkIdle)
	if err := page.Navigate(url); err != nil {
		return err
	}
	wait()
	return nil
}

// URL returns the page's current URL after any redirects.
func (p *Page) URL() string {
	info, err := p.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// Find returns the first element matching selector without waiting.
func (p *Page) Find(ctx context.Context, selector string) (profscrape.Node, error) {
	has, el, err := p.page.Context(ctx).Has(selector)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, profscrape.Errorf(profscrape.ENOTFOUND, "no element matches %q", selector)
	}
	return &Node{el: el}, nil
}

// FindAll returns every element matching selector in document order.
func (p *Page) FindAll(ctx context.Context, selector string) ([]profscrape.Node, error) {
	els, err := p.page.Context(ctx).Elements(selector)
	if err != nil {
		return nil, err
	}
	nodes := make([]profscrape.Node, 0, len(els))
	for _, el := range els {
		nodes = append(nodes, &Node{el: el})
	}
	return nodes, nil
}

// Click waits for selector to appear and clicks it.
func (p *Page) Click(ctx context.Context, selector string) error {
	el, err := p.page.Context(ctx).Element(selector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

// WaitFor blocks until selector matches or ctx ends.
func (p *Page) WaitFor(ctx context.Context, selector string) error {
	_, err := p.page.Context(ctx).Element(selector)
	return err
}

// Ensure Node implements profscrape.Node at compile time.
var _ profscrape.Node = (*Node)(nil)

// Node is a live element. It inherits the context of the call that found it.
type Node struct {
	el *rod.Element
}

// Text returns the element's trimmed textContent, including text that is
// visually hidden.
func (n *Node) Text() (string, error) {
	res, err := n.el.Eval(`() => this.textContent`)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Value.Str()), nil
}

// Attr returns the named DOM property, so that src and href come back as
// absolute URLs. It falls back to the attribute when the property is unset.
func (n *Node) Attr(name string) (string, error) {
	if prop, err := n.el.Property(name); err == nil && !prop.Nil() {
		if v := prop.Str(); v != "" {
			return v, nil
		}
	}
	v, err := n.el.Attribute(name)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", profscrape.Errorf(profscrape.ENOTFOUND, "attribute %q not found", name)
	}
	return *v, nil
}

// Find returns the first descendant matching selector without waiting.
func (n *Node) Find(selector string) (profscrape.Node, error) {
	has, el, err := n.el.Has(selector)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, profscrape.Errorf(profscrape.ENOTFOUND, "no element matches %q", selector)
	}
	return &Node{el: el}, nil
}
