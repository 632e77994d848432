// Package htmlutil reads sentence files marked up as "<s snum=N> … </s>".
package htmlutil

import (
	"bytes"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/happyhackingspace/wordalign/internal/textutil"
)

// MarkedSentence is the text of one <s> element.
type MarkedSentence struct {
	Num  string
	Text string
}

// LoadHTML parses markup into a goquery Document.
func LoadHTML(r io.Reader) (*goquery.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(root), nil
}

// LoadHTMLString parses a markup string into a goquery Document.
func LoadHTMLString(htmlStr string) (*goquery.Document, error) {
	return LoadHTML(strings.NewReader(htmlStr))
}

// GetSentences returns every <s> element in document order with its snum
// attribute and whitespace-normalised text.
func GetSentences(doc *goquery.Document) []MarkedSentence {
	var out []MarkedSentence
	doc.Find("s").Each(func(_ int, s *goquery.Selection) {
		num, _ := s.Attr("snum")
		out = append(out, MarkedSentence{
			Num:  num,
			Text: textutil.NormalizeWhitespaces(s.Text()),
		})
	})
	return out
}

// ReadSentences returns the sentences of a gold sentence file. Files with <s>
// markup yield one sentence per element. Files without it yield one sentence
// per non-empty line.
func ReadSentences(data []byte) ([]string, error) {
	if bytes.Contains(data, []byte("<s")) {
		doc, err := LoadHTML(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		marked := GetSentences(doc)
		if len(marked) > 0 {
			out := make([]string, len(marked))
			for i, m := range marked {
				out[i] = m.Text
			}
			return out, nil
		}
	}
	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out, nil
}
