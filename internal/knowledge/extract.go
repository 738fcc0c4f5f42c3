package knowledge

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/gabriel-vasile/mimetype"
)

// ErrUnsupportedType is returned for content that is neither HTML nor text
var ErrUnsupportedType = errors.New("unsupported content type")

// Document is the text extracted from raw content
type Document struct {
	Title    string
	Text     string
	MimeType string
}

// Extract detects the type of data and returns its text. Markdown and plain
// text pass through; HTML is reduced to its readable text with headings kept
// as markdown headings so Split can use them.
func Extract(data []byte, fileName string) (*Document, error) {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is("text/html"):
		return extractHTML(data)
	case mt.Is("text/plain"):
		return &Document{Text: string(data), MimeType: textType(fileName)}, nil
	case isTextFileName(fileName) && utf8.Valid(data):
		return &Document{Text: string(data), MimeType: textType(fileName)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, mt.String())
	}
}

func extractHTML(data []byte) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find("script,style,nav,noscript,header,footer,iframe,svg").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	const blocks = "h1,h2,h3,h4,h5,h6,p,li,pre,blockquote,td"
	var b strings.Builder
	doc.Find("body").Find(blocks).Each(func(_ int, s *goquery.Selection) {
		if s.ParentsFiltered(blocks).Length() > 0 {
			return
		}
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text == "" {
			return
		}
		switch tag := goquery.NodeName(s); tag {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString(strings.Repeat("#", int(tag[1]-'0')) + " " + text + "\n\n")
		case "li":
			b.WriteString("- " + text + "\n")
		default:
			b.WriteString(text + "\n\n")
		}
	})

	text := strings.TrimSpace(b.String())
	if text == "" {
		text = strings.Join(strings.Fields(doc.Find("body").Text()), " ")
	}
	return &Document{Title: title, Text: text, MimeType: "text/html"}, nil
}

func isTextFileName(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range []string{".md", ".markdown", ".txt", ".text"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func textType(fileName string) string {
	lower := strings.ToLower(fileName)
	if strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown") {
		return "text/markdown"
	}
	return "text/plain"
}
