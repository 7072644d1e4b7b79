package causelist

import (
	"regexp"
	"strings"
)

// CaseNumber identifies a case by its type, number and year, e.g. CIV 123 of 2024.
type CaseNumber struct {
	Type   string `json:"type"`
	Number string `json:"number"`
	Year   string `json:"year"`
}

// String renders the case number the way cause lists usually print it.
func (c CaseNumber) String() string {
	return c.Type + " " + c.Number + "/" + c.Year
}

func (c CaseNumber) complete() bool {
	return strings.TrimSpace(c.Type) != "" &&
		strings.TrimSpace(c.Number) != "" &&
		strings.TrimSpace(c.Year) != ""
}

func (c CaseNumber) empty() bool {
	return strings.TrimSpace(c.Type) == "" &&
		strings.TrimSpace(c.Number) == "" &&
		strings.TrimSpace(c.Year) == ""
}

// Query selects the rows of a cause list to report.
// Exactly one of CNR and Case must be set.
type Query struct {
	CNR  string      `json:"cnr,omitempty"`
	Case *CaseNumber `json:"case,omitempty"`
}

// Validate returns an error if the query does not select exactly one form.
func (q *Query) Validate() error {
	hasCNR := strings.TrimSpace(q.CNR) != ""
	hasCase := q.Case != nil && !q.Case.empty()

	switch {
	case hasCNR && hasCase:
		return Errorf(EINVALID, "provide either a CNR or a case type, number and year, not both")
	case hasCase && !q.Case.complete():
		return Errorf(EINVALID, "case type, number and year are all required")
	case !hasCNR && !hasCase:
		return Errorf(EINVALID, "provide either a CNR or a case type, number and year")
	}
	return nil
}

// Matcher returns the row matcher for the active query form.
func (q *Query) Matcher() (Matcher, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(q.CNR) != "" {
		return NewCNRMatcher(q.CNR), nil
	}
	return NewCaseMatcher(*q.Case), nil
}

// Pattern returns the case pattern for a case query and "" for a CNR query.
func (q *Query) Pattern() string {
	if q.Case == nil || strings.TrimSpace(q.CNR) != "" {
		return ""
	}
	return CasePattern(*q.Case)
}

// String returns a short human-readable description of the query.
func (q *Query) String() string {
	if cnr := strings.TrimSpace(q.CNR); cnr != "" {
		return cnr
	}
	if q.Case != nil {
		return q.Case.String()
	}
	return ""
}

// Matcher decides whether the flattened text of a row belongs to a query.
// Implementations must be safe for concurrent use.
type Matcher interface {
	Match(text string) bool
}

// CNRMatcher matches rows containing a case reference number, ignoring case.
type CNRMatcher struct {
	cnr string
}

// NewCNRMatcher returns a matcher for the given CNR.
func NewCNRMatcher(cnr string) *CNRMatcher {
	return &CNRMatcher{cnr: strings.ToLower(strings.TrimSpace(cnr))}
}

// Match reports whether text contains the CNR.
func (m *CNRMatcher) Match(text string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(text)), m.cnr)
}

// CaseMatcher matches rows mentioning a case number in any of its usual spellings.
type CaseMatcher struct {
	re *regexp.Regexp
}

// NewCaseMatcher returns a matcher for the given case number.
func NewCaseMatcher(c CaseNumber) *CaseMatcher {
	return &CaseMatcher{re: regexp.MustCompile("(?i)" + CasePattern(c))}
}

// Match reports whether text mentions the case number.
func (m *CaseMatcher) Match(text string) bool {
	return m.re.MatchString(strings.ToLower(strings.TrimSpace(text)))
}

// CaseVariants returns the literal spellings a cause list may use for a case:
//
//	CIV 123 of 2024, CIV 123/2024, CIV-123-2024, CIV 123 2024
func CaseVariants(c CaseNumber) []string {
	return []string{
		c.Type + " " + c.Number + " of " + c.Year,
		c.Type + " " + c.Number + "/" + c.Year,
		c.Type + "-" + c.Number + "-" + c.Year,
		c.Type + " " + c.Number + " " + c.Year,
	}
}

// CasePattern returns an alternation of the escaped case variants.
// The pattern carries no flags; callers add (?i) themselves.
func CasePattern(c CaseNumber) string {
	variants := CaseVariants(c)
	quoted := make([]string, len(variants))
	for i, v := range variants {
		quoted[i] = regexp.QuoteMeta(v)
	}
	return strings.Join(quoted, "|")
}
