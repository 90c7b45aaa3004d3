package types

// Family relationship types.
const (
	RelMarried    = "married"
	RelUnmarried  = "unmarried"
	RelCivilUnion = "civil-union"
	RelUnknown    = "unknown"
	RelCustom     = "custom"
)

// Child-to-parent relationship types carried on a ChildRef.
const (
	ChildRelBirth   = "birth"
	ChildRelAdopted = "adopted"
	ChildRelFoster  = "foster"
	ChildRelStep    = "step"
	ChildRelUnknown = "unknown"
)

// ChildRef links a family to one child, with the child's relationship to
// each parent recorded separately.
type ChildRef struct {
	Child     Handle `json:"child"`
	FatherRel string `json:"father_rel,omitempty"`
	MotherRel string `json:"mother_rel,omitempty"`
}

// Family is a parental unit. Father and Mother are optional; an empty
// handle means that parent is not recorded.
type Family struct {
	Handle    Handle     `json:"handle"`
	GrampsID  string     `json:"gramps_id"`
	Father    Handle     `json:"father,omitempty"`
	Mother    Handle     `json:"mother,omitempty"`
	RelType   string     `json:"rel_type"`
	ChildRefs []ChildRef `json:"child_refs,omitempty"`
	EventRefs []EventRef `json:"event_refs,omitempty"`
}
