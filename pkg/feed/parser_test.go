package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	rssContent := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>World Service</title>
	<link>http://example.com</link>
	<description>World news</description>
	<item>
		<title>Parliament Passes Budget</title>
		<link>http://example.com/budget</link>
		<description>The budget passed after a long debate.</description>
		<content:encoded><![CDATA[<p>The budget passed after a long debate in parliament.</p>]]></content:encoded>
		<pubDate>Mon, 02 Jan 2006 15:04:05 -0700</pubDate>
		<guid>http://example.com/budget</guid>
	</item>
	<item>
		<title>Storm Hits Coast</title>
		<link>http://example.com/storm</link>
		<description>A storm made landfall overnight.</description>
		<pubDate>Tue, 03 Jan 2006 15:04:05 -0700</pubDate>
	</item>
</channel>
</rss>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssContent))
	}))
	defer server.Close()

	parser := NewParser(5*time.Second, "newsproof-test/0.1")
	parsed, err := parser.Parse(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "World Service", parsed.Title)
	assert.Equal(t, "http://example.com", parsed.Link)

	require.Len(t, parsed.Items, 2)

	// check first item
	item1 := parsed.Items[0]
	assert.Equal(t, "Parliament Passes Budget", item1.Title)
	assert.Equal(t, "http://example.com/budget", item1.Link)
	assert.Equal(t, "The budget passed after a long debate.", item1.Description)
	assert.Equal(t, "<p>The budget passed after a long debate in parliament.</p>", item1.Content)
	assert.Equal(t, "http://example.com/budget", item1.GUID)
	assert.False(t, item1.Published.IsZero())

	// check second item - should generate GUID from link
	item2 := parsed.Items[1]
	assert.Equal(t, "Storm Hits Coast", item2.Title)
	assert.Equal(t, "http://example.com/storm", item2.GUID)
}

func TestParser_Parse_AtomFeed(t *testing.T) {
	atomContent := `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
	<title>Science Wire</title>
	<link href="http://example.com"/>
	<entry>
		<title>Probe Reaches Orbit</title>
		<link href="http://example.com/probe"/>
		<id>urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a</id>
		<updated>2006-01-02T15:04:05Z</updated>
		<summary>The probe entered orbit on schedule.</summary>
	</entry>
</feed>`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/atom+xml")
		w.Write([]byte(atomContent))
	}))
	defer server.Close()

	parser := NewParser(5*time.Second, "newsproof-test/0.1")
	parsed, err := parser.Parse(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Science Wire", parsed.Title)

	require.Len(t, parsed.Items, 1)
	item := parsed.Items[0]
	assert.Equal(t, "Probe Reaches Orbit", item.Title)
	assert.Equal(t, "http://example.com/probe", item.Link)
	assert.Equal(t, "urn:uuid:1225c695-cfb8-4ebb-aaaa-80da344efa6a", item.GUID)
	// atom updated time becomes the published fallback
	assert.False(t, item.Published.IsZero())
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Run("HTTP error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		parser := NewParser(5*time.Second, "newsproof-test/0.1")
		_, err := parser.Parse(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code")
	})

	t.Run("invalid XML", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not a feed at all"))
		}))
		defer server.Close()

		parser := NewParser(5*time.Second, "newsproof-test/0.1")
		_, err := parser.Parse(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})

	t.Run("unreachable host", func(t *testing.T) {
		parser := NewParser(100*time.Millisecond, "newsproof-test/0.1")
		_, err := parser.Parse(context.Background(), "http://127.0.0.1:1/feed")
		require.Error(t, err)
	})
}

func TestParser_Parse_UserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel><title>t</title></channel></rss>`))
	}))
	defer server.Close()

	parser := NewParser(time.Second, "newsproof/1.0")
	_, err := parser.Parse(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "newsproof/1.0", gotUA)
}
