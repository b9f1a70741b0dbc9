package search

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Query shape patterns. A-share codes start with 0, 3, 6 or 9 and have six
// digits; short all-digit or all-letter tokens are treated as codes too.
var (
	aSharePattern  = regexp.MustCompile(`^[0369]\d{5}$`)
	digitsPattern  = regexp.MustCompile(`^\d{1,5}$`)
	lettersPattern = regexp.MustCompile(`^[A-Za-z]{1,5}$`)
)

const (
	inferenceMaxLen = 3
	inferenceMinTop = 0.95
)

// ParsedQuery records what the user's query token denoted once resolution
// is done: a stock code or a company name, optionally bound to a concrete
// company when the result set pins one down.
type ParsedQuery struct {
	Raw         string
	IsCode      bool
	CompanyCode string
	CompanyName string
}

// QueryCandidate is the slice of a ranked result the parser needs.
type QueryCandidate struct {
	CompanyCode string
	CompanyName string
	Score       float64
}

// ResolveQuery classifies a raw query token as code or name and, when the
// ranked results pin down a company, binds the query to it.
//
// With no results the token is classified by shape alone. With results,
// resolution prefers an exact code match over a name match; failing both,
// a sufficiently confident top result for a very short query is taken as
// the intended company; otherwise the shape classification stands, keeping
// the first result's identity when its code agrees with the token.
func ResolveQuery(query string, candidates []QueryCandidate) ParsedQuery {
	query = strings.TrimSpace(query)
	parsed := classifyShape(query)

	if len(candidates) == 0 {
		return parsed
	}

	// Code comparison is case-insensitive for letter tickers
	for _, c := range candidates {
		if strings.EqualFold(c.CompanyCode, query) {
			return ParsedQuery{Raw: query, IsCode: true, CompanyCode: c.CompanyCode, CompanyName: c.CompanyName}
		}
	}

	lowered := strings.ToLower(query)
	for _, c := range candidates {
		name := strings.ToLower(c.CompanyName)
		if name == lowered || (lowered != "" && strings.Contains(name, lowered)) {
			return ParsedQuery{Raw: query, IsCode: false, CompanyCode: c.CompanyCode, CompanyName: c.CompanyName}
		}
	}

	// A near-certain top result for a very short token is taken as the
	// intended company even when the token itself matched nothing.
	top := candidates[0]
	if top.Score > inferenceMinTop && utf8.RuneCountInString(query) <= inferenceMaxLen {
		return ParsedQuery{Raw: query, IsCode: parsed.IsCode, CompanyCode: top.CompanyCode, CompanyName: top.CompanyName}
	}

	// Shape fallback: keep the classification, but adopt the first
	// result's identity when its code agrees with the token.
	if parsed.IsCode && strings.EqualFold(top.CompanyCode, parsed.CompanyCode) {
		parsed.CompanyName = top.CompanyName
	}
	return parsed
}

func classifyShape(query string) ParsedQuery {
	parsed := ParsedQuery{Raw: query}
	switch {
	case aSharePattern.MatchString(query),
		digitsPattern.MatchString(query),
		lettersPattern.MatchString(query):
		parsed.IsCode = true
		parsed.CompanyCode = query
	default:
		parsed.CompanyName = query
	}
	return parsed
}
