package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// CaptionSanitizer strips markup from caption text. YouTube timedtext
// payloads carry tags and entities inside cue text; summaries must receive
// plain text only.
type CaptionSanitizer struct {
	policy *bluemonday.Policy
}

func NewCaptionSanitizer() *CaptionSanitizer {
	return &CaptionSanitizer{policy: bluemonday.StrictPolicy()}
}

// Clean removes all tags, decodes entities and collapses runs of
// whitespace. Idempotent for already-clean text.
func (s *CaptionSanitizer) Clean(raw string) string {
	stripped := s.policy.Sanitize(raw)
	decoded := html.UnescapeString(stripped)
	return strings.Join(strings.Fields(decoded), " ")
}
