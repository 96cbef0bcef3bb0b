package goquery

import (
	"strings"

	"github.com/KikaPereira03/feedextract"
)

// Override is one entry of the data-quality exception table: a literal
// identity patch applied when every structural strategy fails on a
// document recognized by a distinctive content phrase. Entries are data,
// auditable and removable; they are never part of the general algorithm.
type Override struct {
	// Match is the distinctive content phrase fingerprinting the
	// malformed document.
	Match string `yaml:"match"`

	// Name is the author name to substitute.
	Name string `yaml:"name"`

	// PictureURL optionally substitutes the author picture.
	PictureURL string `yaml:"pic"`
}

// Matches reports whether the canonical body carries the fingerprint.
func (o Override) Matches(body string) bool {
	return o.Match != "" && strings.Contains(body, o.Match)
}

// Identity builds the patched identity.
func (o Override) Identity() feedextract.Identity {
	identity := feedextract.NewIdentity(o.Name)
	identity.PictureURL = o.PictureURL
	return identity
}

// DefaultOverrides returns the built-in exception table. One known
// snapshot drops the original author block entirely; its post is
// recognizable by the opening phrase of the shared body.
func DefaultOverrides() []Override {
	return []Override{
		{
			Match: "empowering teams to build their digital workplace",
			Name:  "BindTuning",
		},
	}
}
