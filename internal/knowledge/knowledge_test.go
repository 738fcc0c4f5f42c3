package knowledge

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitByHeadings(t *testing.T) {
	doc := "Intro line.\n\n# Shipping\n\nWe ship worldwide.\n\n## Returns ##\n\nWithin 30 days.\n\n# Empty\n\n"
	chunks := Split(doc, 1500)

	require.Len(t, chunks, 3)
	assert.Equal(t, Chunk{Heading: "", Content: "Intro line."}, chunks[0])
	assert.Equal(t, Chunk{Heading: "Shipping", Content: "We ship worldwide."}, chunks[1])
	assert.Equal(t, Chunk{Heading: "Returns", Content: "Within 30 days."}, chunks[2])
}

func TestSplitLargeSectionByParagraphs(t *testing.T) {
	para := strings.Repeat("a", 40)
	doc := "# FAQ\n\n" + strings.Join([]string{para, para, para}, "\n\n")

	chunks := Split(doc, 90)
	require.Len(t, chunks, 2)
	assert.Equal(t, para+"\n\n"+para, chunks[0].Content)
	assert.Equal(t, para, chunks[1].Content)
	for _, c := range chunks {
		assert.Equal(t, "FAQ", c.Heading)
		assert.LessOrEqual(t, len(c.Content), 90)
	}
}

func TestSplitLongParagraphByWords(t *testing.T) {
	words := strings.TrimSpace(strings.Repeat("word ", 50))
	chunks := Split(words, 24)
	require.NotEmpty(t, chunks)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c.Content), 24)
	}
	var rebuilt []string
	for _, c := range chunks {
		rebuilt = append(rebuilt, c.Content)
	}
	assert.Equal(t, words, strings.Join(rebuilt, " "))
}

func TestSplitHardCutsOversizeWord(t *testing.T) {
	chunks := Split(strings.Repeat("x", 25), 10)
	require.Len(t, chunks, 3)
	assert.Equal(t, strings.Repeat("x", 10), chunks[0].Content)
	assert.Equal(t, strings.Repeat("x", 5), chunks[2].Content)
}

func TestSplitDefaultsSize(t *testing.T) {
	chunks := Split(strings.Repeat("y ", DefaultChunkSize), 0)
	assert.Len(t, chunks, 2)
}

func TestExtractHTML(t *testing.T) {
	html := `<!DOCTYPE html><html><head><title> Help Center </title><style>p{}</style></head>
<body><nav>Home | About</nav><h1>Returns</h1><p>You can return items
 within 30 days.</p><ul><li><p>Keep the receipt</p></li></ul><script>var x=1;</script></body></html>`

	doc, err := Extract([]byte(html), "page.html")
	require.NoError(t, err)
	assert.Equal(t, "Help Center", doc.Title)
	assert.Equal(t, "text/html", doc.MimeType)
	assert.Contains(t, doc.Text, "# Returns")
	assert.Contains(t, doc.Text, "You can return items within 30 days.")
	assert.Contains(t, doc.Text, "- Keep the receipt")
	assert.Equal(t, 1, strings.Count(doc.Text, "Keep the receipt"))
	assert.NotContains(t, doc.Text, "var x")
	assert.NotContains(t, doc.Text, "Home | About")

	chunks := Split(doc.Text, 1500)
	require.Len(t, chunks, 1)
	assert.Equal(t, "Returns", chunks[0].Heading)
}

func TestExtractText(t *testing.T) {
	doc, err := Extract([]byte("# Title\n\nplain body"), "notes.md")
	require.NoError(t, err)
	assert.Equal(t, "text/markdown", doc.MimeType)
	assert.Equal(t, "# Title\n\nplain body", doc.Text)

	doc, err = Extract([]byte("just text"), "")
	require.NoError(t, err)
	assert.Equal(t, "text/plain", doc.MimeType)
}

func TestExtractRejectsBinary(t *testing.T) {
	_, err := Extract([]byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj"), "manual.pdf")
	assert.True(t, errors.Is(err, ErrUnsupportedType))

	_, err = Extract([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0}, "logo.png")
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("hello"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("z", 64)))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	f := NewFetcher(time.Second, 32)

	body, err := f.Fetch(context.Background(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(body))

	_, err = f.Fetch(context.Background(), srv.URL+"/big")
	assert.ErrorContains(t, err, "exceeds 32 bytes")

	_, err = f.Fetch(context.Background(), srv.URL+"/missing")
	assert.ErrorContains(t, err, "status 404")
}
