// Package printability flags meshes that are likely to print badly.
// Checks are pure threshold rules over summary statistics; nothing here
// inspects actual geometry.
package printability

// Report is the verdict for one mesh. Passed is derived from Issues,
// never set independently.
type Report struct {
	Passed          bool     `json:"passed" firestore:"passed"`
	Issues          []string `json:"issues" firestore:"issues"`
	Recommendations []string `json:"recommendations" firestore:"recommendations"`
}

// Rule couples a predicate over stats with the issue and recommendation
// it raises. Rules are evaluated independently, in declaration order.
type Rule[S any] struct {
	Check          func(S) bool
	Issue          string
	Recommendation string
}

// Evaluate runs every rule against stats and collects the triggered
// issues and recommendations. When nothing triggers, the per-rule
// recommendations are replaced by the defaults rather than merged.
func Evaluate[S any](stats S, rules []Rule[S], defaults []string) Report {
	issues := []string{}
	recs := []string{}

	for _, r := range rules {
		if r.Check(stats) {
			issues = append(issues, r.Issue)
			recs = append(recs, r.Recommendation)
		}
	}

	if len(issues) == 0 {
		recs = append([]string{}, defaults...)
	}

	return Report{
		Passed:          len(issues) == 0,
		Issues:          issues,
		Recommendations: recs,
	}
}
