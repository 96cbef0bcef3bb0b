package goquery

import (
	"strings"

	"github.com/KikaPereira03/feedextract"
	"github.com/PuerkitoBio/goquery"
)

// resolveContent isolates the canonical post body and, when present, the
// reposter's own added commentary. The body resolution order is: a region
// inside the quoted card (scanning the in-card regions from the last one
// backward), then a region inside the generic nested-update wrapper, then
// the first region found anywhere (plain posts).
//
// Whether the commentary is kept is the assembler's call; this function
// only locates it.
func resolveContent(node *goquery.Selection) (body, commentary string) {
	regions := node.Find(selContent)
	card := node.Find(selQuotedCard)

	body = quotedCardBody(card)
	if body == "" {
		body = contentText(node.Find(selNestedWrapper).Find(selContent))
	}
	if body == "" {
		body = contentText(regions)
	}

	// Reposter commentary: the first content region when it sits outside
	// the quoted card, else the dedicated commentary region outside it.
	if regions.Length() >= 2 {
		first := regions.First()
		if card.Length() == 0 || first.Closest(selQuotedCard).Length() == 0 {
			commentary = contentText(first)
		}
	}
	if commentary == "" {
		node.Find(selCommentary).EachWithBreak(func(_ int, c *goquery.Selection) bool {
			if c.Closest(selQuotedCard).Length() > 0 {
				return true
			}
			commentary = normalizeBody(c.Text())
			return commentary == ""
		})
	}

	return body, commentary
}

// quotedCardBody scans the content regions inside the quoted card from
// the last one backward and returns the first non-empty text.
func quotedCardBody(card *goquery.Selection) string {
	if card.Length() == 0 {
		return ""
	}
	inCard := card.Find(selContent)
	for i := inCard.Length() - 1; i >= 0; i-- {
		if body := contentText(inCard.Eq(i)); body != "" {
			return body
		}
	}
	return ""
}

// contentText returns the normalized body text of the first region in sel.
func contentText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	return normalizeBody(sel.First().Text())
}

// normalizeBody collapses whitespace and strips the literal marker tokens
// the source platform inserts before hashtags, restoring the bare sigil.
func normalizeBody(raw string) string {
	body := feedextract.NormalizeWhitespace(raw)
	body = strings.ReplaceAll(body, "hashtaghashtag#", "#")
	body = strings.ReplaceAll(body, "hashtag#", "#")
	return body
}
