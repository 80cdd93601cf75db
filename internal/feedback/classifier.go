package feedback

import "strings"

// The classifier is a fixed decision list over lowercased substrings.
// Rules are data, not control flow, so the sets can grow without
// touching Classify/ExtractParameters. Order matters everywhere:
// intent rules are checked by priority, size/material groups are
// first-match-wins, functional groups all apply.

type intentRule struct {
	result   Type
	keywords []string
}

var intentRules = []intentRule{
	{TypeApproval, []string{"perfect", "looks good", "approve", "ready"}},
	{TypeRefinement, []string{"change", "adjust", "make it", "need", "should be", "add", "remove"}},
}

type valueRule struct {
	value    string
	keywords []string
}

var sizeRules = []valueRule{
	{SizeLarger, []string{"bigger", "larger", "increase size"}},
	{SizeSmaller, []string{"smaller", "reduce size", "compact"}},
	{SizeWider, []string{"wider", "broader"}},
	{SizeTaller, []string{"taller", "higher"}},
}

var materialRules = []valueRule{
	{MaterialTPU, []string{"flexible", "rubbery", "tpu"}},
	{MaterialPLA, []string{"rigid", "hard", "pla"}},
	{MaterialPETG, []string{"durable", "strong", "petg"}},
	{MaterialABS, []string{"abs"}},
}

var functionalRules = []valueRule{
	{"Add holes or openings", []string{"hole", "opening"}},
	{"Add grip texture", []string{"grip", "texture"}},
	{"Add compartments", []string{"compartment", "section"}},
	{"Smooth edges", []string{"smooth", "rounded"}},
}

// Classify maps free feedback text to its intent category. Approval
// keywords win over refinement keywords when both are present; text
// matching neither set is a plain comment. The caller is expected to
// have rejected empty text already.
func Classify(text string) Type {
	lower := strings.ToLower(text)
	for _, r := range intentRules {
		if containsAny(lower, r.keywords) {
			return r.result
		}
	}
	return TypeComment
}

// ExtractParameters scans feedback text for size, material and
// functional hints. It is independent of Classify: a comment can still
// carry parameters. Returns nil when no category matched, never an
// empty Parameters value. Matching is naive substring presence; false
// positives ("not bigger") are accepted.
func ExtractParameters(text string) *Parameters {
	lower := strings.ToLower(text)

	var p Parameters
	for _, r := range sizeRules {
		if containsAny(lower, r.keywords) {
			p.SizeAdjustment = r.value
			break
		}
	}
	for _, r := range materialRules {
		if containsAny(lower, r.keywords) {
			p.MaterialChange = r.value
			break
		}
	}
	for _, r := range functionalRules {
		if containsAny(lower, r.keywords) {
			p.FunctionalChanges = append(p.FunctionalChanges, r.value)
		}
	}

	if p.SizeAdjustment == "" && p.MaterialChange == "" && len(p.FunctionalChanges) == 0 {
		return nil
	}
	return &p
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
