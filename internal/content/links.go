package content

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	maxLinkLength               = 400
	maxBackgroundPositionLength = 48
)

// DefaultIcon substitutes for blank icon fields across all content types.
const DefaultIcon = "fa fa-home"

// IsValidLink accepts site-relative paths and absolute http(s) URLs. Other
// schemes (javascript:, data:, mailto:) are rejected.
func IsValidLink(s string) bool {
	if s == "" || len(s) > maxLinkLength {
		return false
	}
	return strings.HasPrefix(s, "/") ||
		strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://")
}

var backgroundPositionToken = regexp.MustCompile(`^(left|center|right|top|bottom|\d{1,3}%|\d+px)$`)

// IsValidBackgroundPosition checks the constrained CSS background-position
// grammar used by hero slides: one or two space-separated tokens.
func IsValidBackgroundPosition(s string) bool {
	if s == "" || len(s) > maxBackgroundPositionLength {
		return false
	}
	tokens := strings.Fields(s)
	if len(tokens) < 1 || len(tokens) > 2 {
		return false
	}
	for _, t := range tokens {
		if !backgroundPositionToken.MatchString(t) {
			return false
		}
	}
	return true
}

var allowedVideoHosts = map[string]struct{}{
	"youtube.com":      {},
	"www.youtube.com":  {},
	"youtu.be":         {},
	"vimeo.com":        {},
	"www.vimeo.com":    {},
	"player.vimeo.com": {},
}

// IsAllowedVideoURL restricts video CTAs to YouTube/Vimeo. Malformed URLs
// are invalid, never an error.
func IsAllowedVideoURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	_, ok := allowedVideoHosts[strings.ToLower(u.Hostname())]
	return ok
}
