package opml_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kindlyrss/internal/opml"
)

const nested = `<?xml version="1.0" encoding="ISO-8859-1"?>
<opml version="2.0">
  <head><title>Subs</title></head>
  <body>
    <outline text="Tech">
      <outline text="Go" type="rss" xmlUrl="https://go.dev/blog/feed.atom" htmlUrl="https://go.dev/blog"/>
      <outline text="Deeper">
        <outline title="Nested" xmlUrl="https://nested.example/rss"/>
      </outline>
    </outline>
    <outline text="Loose" xmlUrl="https://loose.example/rss"/>
    <outline text="Empty folder"/>
  </body>
</opml>`

func TestParse_FlattensFolders(t *testing.T) {
	doc, err := opml.Parse(strings.NewReader(nested))
	require.NoError(t, err)
	require.Equal(t, "Subs", doc.Head.Title)

	feeds := doc.Feeds()
	require.Len(t, feeds, 3)
	require.Equal(t, "https://go.dev/blog/feed.atom", feeds[0].XMLURL)
	require.Equal(t, "https://go.dev/blog", feeds[0].HTMLURL)
	require.Equal(t, "Nested", feeds[1].Title)
	require.Equal(t, "https://loose.example/rss", feeds[2].XMLURL)
}

func TestParse_Invalid(t *testing.T) {
	_, err := opml.Parse(strings.NewReader("not xml"))
	require.Error(t, err)
}

func TestEncode(t *testing.T) {
	payload, err := opml.Encode(opml.Document{
		Version: "2.0",
		Head:    opml.Head{Title: "Export"},
		Body: opml.Body{Outlines: []opml.Outline{
			{Text: "A & B", Type: "rss", XMLURL: "https://a.example/rss"},
		}},
	})
	require.NoError(t, err)

	out := string(payload)
	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Contains(t, out, `<opml version="2.0">`)
	require.Contains(t, out, `text="A &amp; B"`)
	require.Contains(t, out, `xmlUrl="https://a.example/rss"`)

	doc, err := opml.Parse(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, doc.Feeds(), 1)
}
