package goquery

// Structural markers for the feed snapshot layout. There is no formal
// schema; these are the class/attribute patterns observed across document
// variants, so most extraction paths try several of them in order.
const (
	// selPost bounds one content node (a single post).
	selPost = "div.feed-shared-update-v2"

	// Header region above the actor block; carries the repost marker
	// phrase and the resharing identity.
	selHeaderText  = ".update-components-header__text-view"
	selHeaderImage = ".update-components-header__image img"
	selHeaderLink  = ".update-components-header__text-view a"

	// Author blocks.
	selActor         = ".update-components-actor"
	selActorTitle    = ".update-components-actor__title"
	selActorName     = ".update-components-actor__title span[dir=ltr]"
	selActorHeadline = ".update-components-actor__description"
	selActorAge      = ".update-components-actor__sub-description"
	selActorAvatar   = ".update-components-actor__avatar-image"

	// Quoted card: an embedded original post inside a repost.
	selQuotedCard = ".update-components-mini-update-v2"

	// Generic nested-update wrapper.
	selNestedWrapper = ".feed-shared-update-v2__update-content-wrapper"

	// Content regions and the dedicated reposter commentary region.
	selContent    = ".feed-shared-inline-show-more-text"
	selCommentary = ".update-components-update-v2__commentary"

	// Engagement counters.
	selLikes        = ".social-details-social-counts__reactions-count"
	selComments     = "li.social-details-social-counts__comments button"
	selRepostsARIA  = "button[aria-label*=repost]"
	selRepostsRight = ".social-details-social-counts__item--right-aligned button"

	// Image attachments.
	selImageLink = ".update-components-image__image-link img"
	selImageAny  = ".update-components-image img"
)

// repostMarkerPhrase is the literal header phrase marking a reshare.
const repostMarkerPhrase = "reposted this"

// reshareMarkers are structural markers whose presence anywhere in the
// node indicates a reshare even without the header phrase.
var reshareMarkers = []string{
	".feed-shared-reshared-update",
	".update-components-reshared-update",
	"[data-urn*=reshare]",
}

// videoMarkers identify an attached video player.
var videoMarkers = []string{
	".update-components-linkedin-video",
	".update-components-video",
	".video-js",
	"video",
}

// videoThumbnailCandidates are scanned in order for a background-image
// style declaration or a poster attribute.
var videoThumbnailCandidates = []string{
	"video[poster]",
	".vjs-poster",
	".update-components-video__container [style*=background-image]",
	"[style*=background-image]",
}

// videoDurationCandidates are the text regions scanned for a duration.
var videoDurationCandidates = []string{
	".update-components-video-duration",
	".video-duration",
	".vjs-duration-display",
}

// carouselMarkers identify an attached document/carousel viewer.
var carouselMarkers = []string{
	".update-components-document__container",
	".document-s-container",
	"iframe[title^='Document player']",
}

// carouselTitlePrefix is stripped from the viewer-frame title attribute.
const carouselTitlePrefix = "Document player for "

// selCarouselTitleText is the fallback title text region.
const selCarouselTitleText = ".update-components-document__title"

// feedImageToken filters image URLs to feed images, excluding avatars and
// other chrome the snapshot embeds.
const feedImageToken = "feedshare"
