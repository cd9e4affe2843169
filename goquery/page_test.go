package goquery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/profscrape"
	"github.com/fwojciec/profscrape/goquery"
	"github.com/fwojciec/profscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardHTML = `<!DOCTYPE html>
<html>
<body>
<section class="card">
	<h1 class="title">  Jane Smith  </h1>
	<img class="photo" src="https://example.com/jane.jpg">
	<ul>
		<li><span class="t-normal"><span>First</span><span>Second</span></span></li>
		<li><span class="t-normal"><span>Third</span></span></li>
	</ul>
</section>
</body>
</html>`

func TestParsePage(t *testing.T) {
	t.Parallel()

	t.Run("finds first matching node with trimmed text", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.ParsePage("https://example.com/in/jane", cardHTML)
		require.NoError(t, err)

		node, err := page.Find(context.Background(), "h1.title")
		require.NoError(t, err)

		text, err := node.Text()
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", text)
		assert.Equal(t, "https://example.com/in/jane", page.URL())
	})

	t.Run("returns ENOTFOUND for absent selector", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.ParsePage("https://example.com", cardHTML)
		require.NoError(t, err)

		_, err = page.Find(context.Background(), "h2.missing")

		require.Error(t, err)
		assert.Equal(t, profscrape.ENOTFOUND, profscrape.ErrorCode(err))
	})

	t.Run("returns all matches in document order", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.ParsePage("https://example.com", cardHTML)
		require.NoError(t, err)

		nodes, err := page.FindAll(context.Background(), "li")
		require.NoError(t, err)
		require.Len(t, nodes, 2)

		first, err := nodes[0].Find(".t-normal span:nth-child(2)")
		require.NoError(t, err)
		text, _ := first.Text()
		assert.Equal(t, "Second", text)

		_, err = nodes[1].Find(".t-normal span:nth-child(2)")
		assert.Equal(t, profscrape.ENOTFOUND, profscrape.ErrorCode(err))
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.ParsePage("https://example.com", cardHTML)
		require.NoError(t, err)

		nodes, err := page.FindAll(context.Background(), "article")

		require.NoError(t, err)
		assert.NotNil(t, nodes)
		assert.Empty(t, nodes)
	})

	t.Run("reads attributes", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.ParsePage("https://example.com", cardHTML)
		require.NoError(t, err)

		node, err := page.Find(context.Background(), "img.photo")
		require.NoError(t, err)

		src, err := node.Attr("src")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/jane.jpg", src)

		_, err = node.Attr("alt")
		assert.Equal(t, profscrape.ENOTFOUND, profscrape.ErrorCode(err))
	})

	t.Run("click and wait succeed only for present selectors", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.ParsePage("https://example.com", cardHTML)
		require.NoError(t, err)
		ctx := context.Background()

		assert.NoError(t, page.Click(ctx, "h1.title"))
		assert.NoError(t, page.WaitFor(ctx, "ul li"))
		assert.Equal(t, profscrape.ENOTFOUND, profscrape.ErrorCode(page.Click(ctx, "button.more")))
		assert.Equal(t, profscrape.ENOTFOUND, profscrape.ErrorCode(page.WaitFor(ctx, ".pvs-entity")))
	})

	t.Run("honors canceled context", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.ParsePage("https://example.com", cardHTML)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = page.Find(ctx, "h1")
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPage_Navigate(t *testing.T) {
	t.Parallel()

	t.Run("loads document from fetcher and records final URL", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*profscrape.Snapshot, error) {
				assert.Equal(t, "https://www.linkedin.com/in/jane", url)
				return &profscrape.Snapshot{
					URL:  "https://www.linkedin.com/authwall?sessionRedirect=x",
					HTML: cardHTML,
				}, nil
			},
		}
		page := goquery.NewPage(fetcher)

		err := page.Navigate(context.Background(), "https://www.linkedin.com/in/jane")

		require.NoError(t, err)
		assert.Equal(t, "https://www.linkedin.com/authwall?sessionRedirect=x", page.URL())
		_, err = page.Find(context.Background(), "h1.title")
		assert.NoError(t, err)
	})

	t.Run("falls back to requested URL when fetcher reports none", func(t *testing.T) {
		t.Parallel()

		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*profscrape.Snapshot, error) {
				return &profscrape.Snapshot{HTML: cardHTML}, nil
			},
		}
		page := goquery.NewPage(fetcher)

		require.NoError(t, page.Navigate(context.Background(), "https://example.com/a"))
		assert.Equal(t, "https://example.com/a", page.URL())
	})

	t.Run("propagates fetch errors", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("connection refused")
		fetcher := &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (*profscrape.Snapshot, error) {
				return nil, fetchErr
			},
		}
		page := goquery.NewPage(fetcher)

		err := page.Navigate(context.Background(), "https://example.com")

		assert.ErrorIs(t, err, fetchErr)
	})

	t.Run("queries before navigation fail", func(t *testing.T) {
		t.Parallel()

		page := goquery.NewPage(nil)

		_, err := page.Find(context.Background(), "h1")
		assert.Equal(t, profscrape.EINVALID, profscrape.ErrorCode(err))
		assert.Equal(t, profscrape.EINVALID, profscrape.ErrorCode(page.Navigate(context.Background(), "https://example.com")))
	})
}
