package services

import "regexp"

// PersonalInfoFilter reports whether free text looks like it carries personal
// contact details. It is an advisory heuristic with accepted false positives
// and negatives, not a security boundary. The workflow takes it as a value so
// stricter validators can be swapped in without touching control flow.
type PersonalInfoFilter func(text string) bool

var personalInfoPattern = regexp.MustCompile(
	`(?i)(\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b)|(@)|(\baddress\b)|(\bstreet\b)|(\bemail\b)`,
)

// DetectPersonalInfo matches phone-number-like digit runs, "@" symbols, and
// the literal words address/street/email, case-insensitively.
func DetectPersonalInfo(text string) bool {
	return personalInfoPattern.MatchString(text)
}
