package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RowText flattens a row: each text node trimmed, empty ones dropped, the
// rest joined by single spaces.
func RowText(sel *goquery.Selection) string {
	return joinStripped(textNodes(sel), " ")
}

// cellText is like RowText but joins the pieces without a separator.
func cellText(sel *goquery.Selection) string {
	return joinStripped(textNodes(sel), "")
}

// textNodes collects the text nodes below the selection in document order.
// Comments and the contents of script, style and template elements are not
// visible text and are skipped.
func textNodes(sel *goquery.Selection) []string {
	var out []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			out = append(out, n.Data)
			return
		case html.CommentNode, html.DoctypeNode:
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Template:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}
	return out
}

func joinStripped(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
