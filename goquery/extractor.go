package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/policyscan"
	"golang.org/x/net/html"
)

// Ensure Extractor implements policyscan.ContentExtractor at compile time.
var _ policyscan.ContentExtractor = (*Extractor)(nil)

// Extractor extracts structured content from HTML pages. It locates the
// primary content region, strips boilerplate, and decomposes the remainder
// into headings, paragraphs, lists, links, and raw text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the structured content.
func (e *Extractor) Extract(rawHTML string) (*policyscan.Content, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, policyscan.Errorf(policyscan.EINVALID, "failed to parse HTML: %v", err)
	}

	content := &policyscan.Content{}

	// The title comes from the first h1 of the whole document, not the
	// located region: titles often sit outside the matched content block.
	// Captured before boilerplate removal mutates the document.
	content.Title = strings.TrimSpace(doc.Find("h1").First().Text())

	region := Locate(doc)
	if region.Length() == 0 {
		return content, nil
	}
	stripBoilerplate(region)

	region.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		tag := goquery.NodeName(sel)
		content.Headings = append(content.Headings, policyscan.Heading{
			Level: int(tag[1] - '0'),
			Text:  strings.TrimSpace(sel.Text()),
			Tag:   tag,
		})
	})

	region.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			content.Paragraphs = append(content.Paragraphs, text)
		}
	})

	region.Find("ul, ol").Each(func(_ int, sel *goquery.Selection) {
		kind := policyscan.ListUnordered
		if goquery.NodeName(sel) == "ol" {
			kind = policyscan.ListOrdered
		}
		var items []string
		sel.Find("li").Each(func(_ int, li *goquery.Selection) {
			if text := strings.TrimSpace(li.Text()); text != "" {
				items = append(items, text)
			}
		})
		// A list with no non-empty items is dropped entirely.
		if len(items) > 0 {
			content.Lists = append(content.Lists, policyscan.List{Kind: kind, Items: items})
		}
	})

	region.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.TrimSpace(sel.Text())
		if text == "" || href == "" {
			return
		}
		content.Links = append(content.Links, policyscan.Link{Text: text, Href: href})
	})

	content.RawText = rawText(region)

	return content, nil
}

// rawText returns the region's full text with each trimmed text segment
// joined by a single newline. Empty-after-trim segments are dropped.
func rawText(region *goquery.Selection) string {
	var parts []string
	for _, node := range region.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
