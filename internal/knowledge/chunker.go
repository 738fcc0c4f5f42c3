// Package knowledge extracts text from uploaded documents and splits it into
// searchable chunks.
package knowledge

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultChunkSize is the maximum chunk length in bytes when none is configured
const DefaultChunkSize = 1500

var headingRegex = regexp.MustCompile(`^(#{1,6})\s+(.+?)\s*#*\s*$`)

// Chunk is one heading-scoped slice of a document
type Chunk struct {
	Heading string
	Content string
}

type section struct {
	heading string
	lines   []string
}

// Split breaks markdown or plain text into chunks no longer than maxSize.
// Sections follow headings; oversize sections split on paragraphs and, when a
// single paragraph is too long, on word boundaries.
func Split(content string, maxSize int) []Chunk {
	if maxSize <= 0 {
		maxSize = DefaultChunkSize
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var sections []section
	cur := &section{}
	for _, line := range strings.Split(content, "\n") {
		if m := headingRegex.FindStringSubmatch(line); m != nil {
			sections = append(sections, *cur)
			cur = &section{heading: strings.TrimSpace(m[2])}
			continue
		}
		cur.lines = append(cur.lines, line)
	}
	sections = append(sections, *cur)

	var chunks []Chunk
	for _, s := range sections {
		body := strings.TrimSpace(strings.Join(s.lines, "\n"))
		if body == "" {
			continue
		}
		if len(body) <= maxSize {
			chunks = append(chunks, Chunk{Heading: s.heading, Content: body})
			continue
		}
		for _, part := range splitParagraphs(body, maxSize) {
			chunks = append(chunks, Chunk{Heading: s.heading, Content: part})
		}
	}
	return chunks
}

func splitParagraphs(content string, maxSize int) []string {
	var out []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}

	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if len(para) > maxSize {
			flush()
			out = append(out, splitWords(para, maxSize)...)
			continue
		}
		if cur.Len() > 0 && cur.Len()+len(para)+2 > maxSize {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteString("\n\n")
		}
		cur.WriteString(para)
	}
	flush()
	return out
}

func splitWords(text string, maxSize int) []string {
	var out []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		for len(word) > maxSize {
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
			cut := maxSize
			for cut > 0 && !utf8.RuneStart(word[cut]) {
				cut--
			}
			if cut == 0 {
				cut = maxSize
			}
			out = append(out, word[:cut])
			word = word[cut:]
		}
		if cur.Len() > 0 && cur.Len()+len(word)+1 > maxSize {
			out = append(out, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}
