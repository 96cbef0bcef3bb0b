package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// isRepost decides whether a content node represents a repost. Signals
// are evaluated in fixed priority order, short-circuiting on the first
// match. The quoted-card signal must run before the generic multi-author
// signal: a quoted-card repost carries two author blocks and would
// otherwise be miscounted by the weaker signal.
func isRepost(node *goquery.Selection) bool {
	// 1. A quoted card that itself contains an independent author block.
	if card := node.Find(selQuotedCard); card.Length() > 0 {
		if card.Find(selActor).Length() > 0 {
			return true
		}
	}

	// 2. The header region literally carries the repost marker phrase.
	if headerHasMarkerPhrase(node) {
		return true
	}

	// 3. Two or more author blocks without a common immediate parent.
	if hasIndependentActors(node) {
		return true
	}

	// 4. Any known reshare structural marker anywhere in the node.
	for _, marker := range reshareMarkers {
		if node.Find(marker).Length() > 0 {
			return true
		}
	}

	// 5. An author block nested inside a secondary content region.
	if node.Find(selNestedWrapper).Find(selActor).Length() > 0 {
		return true
	}

	return false
}

// headerHasMarkerPhrase reports whether any header-region text contains
// the literal repost marker phrase.
func headerHasMarkerPhrase(node *goquery.Selection) bool {
	found := false
	node.Find(selHeaderText).Each(func(_ int, header *goquery.Selection) {
		if strings.Contains(header.Text(), repostMarkerPhrase) {
			found = true
		}
	})
	return found
}

// hasIndependentActors reports whether the node contains at least two
// author blocks that do not share a common immediate parent.
func hasIndependentActors(node *goquery.Selection) bool {
	actors := node.Find(selActor)
	if actors.Length() < 2 {
		return false
	}

	var firstParent *html.Node
	independent := false
	actors.Each(func(i int, actor *goquery.Selection) {
		parent := actor.Get(0).Parent
		if i == 0 {
			firstParent = parent
			return
		}
		if parent != firstParent {
			independent = true
		}
	})
	return independent
}
