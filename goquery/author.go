package goquery

import (
	"strings"

	"github.com/KikaPereira03/feedextract"
	"github.com/PuerkitoBio/goquery"
)

// authorStrategy attempts to resolve an identity from one structural
// region. It returns a zero-name Identity when the region is absent.
type authorStrategy func(node *goquery.Selection) feedextract.Identity

// firstResolved tries each strategy in order and returns the first
// identity with a non-empty name. Keeping the chain as an explicit list
// keeps the priority order visible and testable per strategy.
func firstResolved(node *goquery.Selection, strategies ...authorStrategy) feedextract.Identity {
	for _, strategy := range strategies {
		if identity := strategy(node); identity.Name != "" {
			return identity
		}
	}
	return feedextract.Identity{}
}

// resolvePostAuthor resolves the author of an original (non-repost) post.
func resolvePostAuthor(node *goquery.Selection) feedextract.Identity {
	identity := firstResolved(node, fromActorTitle, fromProfileLink)
	if identity.PictureURL == "" {
		identity.PictureURL = actorPicture(node)
	}
	if identity.Headline == "" {
		identity.Headline = text(node.Find(selActorHeadline))
	}
	return identity
}

// resolveReposter resolves the resharing identity of a repost. When the
// header carries the marker phrase, the name is the text preceding it;
// a direct repost without the phrase falls back to the first author block
// in document order.
func resolveReposter(node *goquery.Selection) feedextract.Identity {
	header := node.Find(selHeaderText)
	if header.Length() > 0 {
		raw := feedextract.NormalizeWhitespace(header.First().Text())
		if i := strings.Index(raw, repostMarkerPhrase); i >= 0 {
			identity := feedextract.NewIdentity(feedextract.SanitizeName(raw[:i]))
			if src, ok := node.Find(selHeaderImage).First().Attr("src"); ok {
				identity.PictureURL = src
			}
			if href, ok := node.Find(selHeaderLink).First().Attr("href"); ok {
				identity.ProfileURL = href
			}
			return identity
		}
	}
	return fromActorTitle(node)
}

// resolveOriginalAuthor resolves the original-author identity of a repost
// via an ordered chain of structural strategies. The reposter's name is
// derived from body so the duplicate-skipping strategy and the override
// table can use it.
func resolveOriginalAuthor(node *goquery.Selection, body, reposterName string, overrides []Override) feedextract.Identity {
	chain := []authorStrategy{fromQuotedCard, fromNestedWrapper, secondIndependentActor(reposterName)}
	if headerHasMarkerPhrase(node) {
		// With the marker phrase present the primary author block holds
		// the original author, not the reposter.
		chain = append([]authorStrategy{fromActorTitle}, chain...)
	}

	identity := firstResolved(node, chain...)
	if identity.Name != "" {
		return identity
	}

	// Last resort: the data-quality exception table for recognized
	// malformed documents.
	for _, o := range overrides {
		if o.Matches(body) {
			return o.Identity()
		}
	}
	return identity
}

// fromActorTitle reads the identity from the primary author block.
func fromActorTitle(node *goquery.Selection) feedextract.Identity {
	title := node.Find(selActorTitle).First()
	if title.Length() == 0 {
		return feedextract.Identity{}
	}

	raw := text(title.Find("span[dir=ltr]"))
	if raw == "" {
		raw = text(title)
	}

	identity := feedextract.NewIdentity(feedextract.SanitizeName(raw))
	identity.PictureURL = actorPicture(node)
	identity.Headline = text(node.Find(selActorHeadline))
	if href, ok := title.Find("a").First().Attr("href"); ok {
		identity.ProfileURL = href
	} else if href, ok := title.Closest("a").Attr("href"); ok {
		identity.ProfileURL = href
	}
	return identity
}

// fromProfileLink scans anchors for a profile-like path with link text.
func fromProfileLink(node *goquery.Selection) feedextract.Identity {
	identity := feedextract.Identity{}
	node.Find("a").EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, _ := link.Attr("href")
		name := feedextract.NormalizeWhitespace(link.Text())
		if !strings.Contains(href, "/in/") || name == "" {
			return true
		}
		identity = feedextract.NewIdentity(feedextract.SanitizeName(name))
		identity.ProfileURL = href
		return false
	})
	return identity
}

// fromQuotedCard reads the author block inside the quoted-card region.
func fromQuotedCard(node *goquery.Selection) feedextract.Identity {
	card := node.Find(selQuotedCard)
	if card.Length() == 0 {
		return feedextract.Identity{}
	}
	return fromActorTitle(card.First())
}

// fromNestedWrapper reads the author block inside a secondary content
// region.
func fromNestedWrapper(node *goquery.Selection) feedextract.Identity {
	wrapper := node.Find(selNestedWrapper)
	if wrapper.Length() == 0 {
		return feedextract.Identity{}
	}
	return fromActorTitle(wrapper.First())
}

// secondIndependentActor returns a strategy that uses the second author
// block found in document order, skipping blocks that duplicate an
// already-resolved name.
func secondIndependentActor(resolved ...string) authorStrategy {
	return func(node *goquery.Selection) feedextract.Identity {
		actors := node.Find(selActor)
		if actors.Length() < 2 {
			return feedextract.Identity{}
		}

		seen := make(map[string]bool)
		for _, name := range resolved {
			if name != "" {
				seen[name] = true
			}
		}

		identity := feedextract.Identity{}
		actors.EachWithBreak(func(i int, actor *goquery.Selection) bool {
			candidate := fromActorTitle(actor)
			if candidate.Name == "" || seen[candidate.Name] {
				return true
			}
			if i == 0 {
				seen[candidate.Name] = true
				return true
			}
			identity = candidate
			return false
		})
		return identity
	}
}

// actorPicture scans the avatar selector candidates for a profile image.
func actorPicture(node *goquery.Selection) string {
	for _, sel := range []string{selActorAvatar, ".EntityPhoto-circle-0", ".ivm-view-attr__img--centered"} {
		if src, ok := node.Find(sel).First().Attr("src"); ok && src != "" {
			return src
		}
	}
	return ""
}
