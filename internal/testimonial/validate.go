package testimonial

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field limits for a submission.
const (
	MaxNameLen      = 100
	MaxEmailLen     = 100
	MaxMessageLen   = 5000
	MaxMessageWords = 500
)

// FailureKind identifies which validation rule rejected a submission.
type FailureKind string

const (
	MissingField   FailureKind = "missing_field"
	TooLong        FailureKind = "too_long"
	Profanity      FailureKind = "profanity"
	LinkNotAllowed FailureKind = "link_not_allowed"
)

// ValidationError reports the first failing rule. Validation is pure: the
// same input always yields the same kind, and a rejected submission never
// reaches the content store.
type ValidationError struct {
	Kind FailureKind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("submission rejected: %s", e.Kind)
}

// urlPattern matches the same fragments the original site blocked:
// scheme prefixes, www., bare TLDs and generic ".xx/" path markers.
var urlPattern = regexp.MustCompile(`(?i)(https?://|www\.|\.[a-z]{2,}/|\.com|\.net|\.org)`)

// tokenPattern splits text into words for the profanity scan.
var tokenPattern = regexp.MustCompile(`[a-z0-9']+`)

// profanityList is deliberately small: this is a memorial guestbook, not a
// general forum, and the goal is catching drive-by abuse rather than every
// possible obscenity.
var profanityList = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"arse", "asshole", "bastard", "bitch", "bollocks", "crap", "cunt",
		"dick", "douche", "fag", "fuck", "fucker", "fucking", "nigger",
		"piss", "prick", "shit", "slut", "twat", "wanker", "whore",
		// french
		"connard", "connasse", "encule", "merde", "pute", "salope",
	} {
		profanityList[w] = struct{}{}
	}
}

func containsProfanity(s string) bool {
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(s), -1) {
		if _, ok := profanityList[tok]; ok {
			return true
		}
	}
	return false
}

// Validate runs the submission pipeline and returns the first failing rule,
// in this fixed order: required fields, length, profanity, links.
func Validate(s Submission) error {
	name := strings.TrimSpace(s.Name)
	relationship := strings.TrimSpace(s.Relationship)
	message := strings.TrimSpace(s.Message)
	email := strings.TrimSpace(s.Email)

	if name == "" || relationship == "" || message == "" {
		return &ValidationError{Kind: MissingField}
	}

	if len(strings.Fields(message)) > MaxMessageWords {
		return &ValidationError{Kind: TooLong}
	}
	// caps are in characters, not bytes; accented French names must not be
	// penalized for their encoding
	if utf8.RuneCountInString(name) > MaxNameLen ||
		utf8.RuneCountInString(message) > MaxMessageLen ||
		utf8.RuneCountInString(email) > MaxEmailLen {
		return &ValidationError{Kind: TooLong}
	}

	if containsProfanity(name) || containsProfanity(relationship) || containsProfanity(message) {
		return &ValidationError{Kind: Profanity}
	}

	if urlPattern.MatchString(message) || urlPattern.MatchString(name) {
		return &ValidationError{Kind: LinkNotAllowed}
	}

	return nil
}
