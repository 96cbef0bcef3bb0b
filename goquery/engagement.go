package goquery

import (
	"regexp"

	"github.com/KikaPereira03/feedextract"
	"github.com/PuerkitoBio/goquery"
)

var (
	likesRE    = regexp.MustCompile(`([\d,]+)`)
	commentsRE = regexp.MustCompile(`([\d,]+)\s*comments?`)
	repostsRE  = regexp.MustCompile(`([\d,]+)\s*reposts?`)
)

// extractEngagement reads the three interaction counters, each from its
// own structural region. Counters are independent: an absent or
// unparsable region yields zero without affecting the others.
func extractEngagement(node *goquery.Selection) feedextract.EngagementCounts {
	counts := feedextract.EngagementCounts{
		Likes:    feedextract.ExtractNumber(text(node.Find(selLikes)), likesRE),
		Comments: feedextract.ExtractNumber(text(node.Find(selComments)), commentsRE),
		Reposts:  feedextract.ExtractNumber(text(node.Find(selRepostsARIA)), repostsRE),
	}

	if counts.Reposts == 0 {
		counts.Reposts = feedextract.ExtractNumber(text(node.Find(selRepostsRight)), repostsRE)
	}

	return counts
}
