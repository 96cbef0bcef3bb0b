package goquery

import (
	"regexp"

	"github.com/KikaPereira03/feedextract"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// relativeAgeTokenRE picks the relative-age token ("3d", "5mo") out of the
// actor sub-description, which also carries visibility text and bullets.
var relativeAgeTokenRE = regexp.MustCompile(`(\d+\s*(?:mo|[hdwy]))`)

// resolveTimestamp resolves the timestamp for one content node. Stage 1
// decodes the embedded activity identifier when one is present and
// decodable; stage 2 reconstructs a jittered instant from the relative
// age text. Stage 1 success always takes precedence.
func (e *Extractor) resolveTimestamp(node *goquery.Selection) string {
	now := e.Now()

	if id, ok := findActivityID(node); ok {
		if t, ok := feedextract.DecodeActivityTime(id, now); ok {
			return t.Format(feedextract.TimeLayout)
		}
	}

	age := ""
	if raw := text(node.Find(selActorAge)); raw != "" {
		if m := relativeAgeTokenRE.FindStringSubmatch(raw); len(m) == 2 {
			age = m[1]
		}
	}
	return feedextract.ResolveRelativeTime(age, now, e.Rand).Format(feedextract.TimeLayout)
}

// findActivityID scans the node and all of its descendants' attributes
// for an embedded activity identifier.
func findActivityID(node *goquery.Selection) (uint64, bool) {
	for _, root := range node.Nodes {
		if id, ok := findActivityIDInNode(root); ok {
			return id, true
		}
	}
	return 0, false
}

func findActivityIDInNode(n *html.Node) (uint64, bool) {
	for _, attr := range n.Attr {
		if id, ok := feedextract.ParseActivityID(attr.Val); ok {
			return id, true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if id, ok := findActivityIDInNode(c); ok {
			return id, true
		}
	}
	return 0, false
}
