package feedback

// Type is the coarse intent category of a piece of user feedback.
type Type string

const (
	TypeComment    Type = "comment"
	TypeRefinement Type = "refinement_request"
	TypeApproval   Type = "approval"
)

// Size adjustment values extracted from feedback text.
const (
	SizeLarger  = "larger"
	SizeSmaller = "smaller"
	SizeWider   = "wider"
	SizeTaller  = "taller"
)

// Material values extracted from feedback text.
const (
	MaterialTPU  = "TPU"
	MaterialPLA  = "PLA"
	MaterialPETG = "PETG"
	MaterialABS  = "ABS"
)

// Parameters is the structured refinement hint extracted from free text.
// A nil *Parameters means nothing was extracted; an instantiated value
// always has at least one populated field.
type Parameters struct {
	SizeAdjustment    string   `json:"size_adjustment,omitempty" firestore:"size_adjustment,omitempty"`
	MaterialChange    string   `json:"material_change,omitempty" firestore:"material_change,omitempty"`
	FunctionalChanges []string `json:"functional_changes,omitempty" firestore:"functional_changes,omitempty"`
}
