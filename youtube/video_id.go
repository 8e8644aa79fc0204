package youtube

import "regexp"

// FallbackVideoID names the output file when no rule matches the URL.
const FallbackVideoID = "video"

// Rules are tried in order, the first match wins. The shapes don't overlap in
// practice but nothing checks that.
var videoIDRules = []*regexp.Regexp{
	regexp.MustCompile(`(?:v=|/v/|youtu\.be/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:shorts/)([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID returns the 11 character video id found in url, or
// FallbackVideoID.
func ExtractVideoID(url string) string {
	for _, rule := range videoIDRules {
		m := rule.FindStringSubmatch(url)
		if m != nil {
			return m[1]
		}
	}
	return FallbackVideoID
}
