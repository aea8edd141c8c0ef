// Package normalizer converts fetched HTML into a stable plain-text
// representation suitable for hashing and diffing across runs.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	horizontalWhitespace = regexp.MustCompile(`[ \t]+`)
	repeatedNewlines     = regexp.MustCompile(`\n{2,}`)
)

// ExtractText parses html leniently and returns its visible text: blocks
// separated by single newlines, horizontal whitespace collapsed, script,
// style and noscript content removed. When selector matches an element the
// extraction is scoped to that element's subtree; a selector with no match
// (or an invalid one) falls back to the whole document. The output is
// deterministic for identical input.
func ExtractText(rawHTML string, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}

	root := doc.Selection
	if selector != "" {
		if scoped := doc.Find(selector).First(); scoped.Length() > 0 {
			root = scoped
		}
	}

	root.Find("script, style, noscript").Remove()

	var blocks []string
	for _, node := range root.Nodes {
		collectText(node, &blocks)
	}

	text := strings.Join(blocks, "\n")
	text = horizontalWhitespace.ReplaceAllString(text, " ")
	text = repeatedNewlines.ReplaceAllString(text, "\n")
	return text, nil
}

// collectText appends the trimmed content of every text node under n in
// document order, skipping whitespace-only nodes.
func collectText(n *html.Node, blocks *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*blocks = append(*blocks, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, blocks)
	}
}
