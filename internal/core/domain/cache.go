package domain

// Decision is the outcome of the per-task cache check.
type Decision int

const (
	// DecisionRecompute fits the block again from its assembled input.
	DecisionRecompute Decision = iota
	// DecisionServe returns the persisted training output without recomputation.
	DecisionServe
	// DecisionTransform applies the fitted block to its assembled input.
	DecisionTransform
)

func (d Decision) String() string {
	switch d {
	case DecisionRecompute:
		return "recompute"
	case DecisionServe:
		return "serve"
	case DecisionTransform:
		return "transform"
	default:
		return "unknown"
	}
}

// CacheState is everything the cache decision depends on, gathered by the caller
// before the decision is made.
type CacheState struct {
	// Fitted reports whether the block has fitted state in its namespace.
	Fitted bool
	// HasOutput reports whether the backend holds a persisted output for the phase.
	HasOutput bool
	// IgnoreCache is the caller's request to retrain everything.
	IgnoreCache bool
	// AncestorsRetrained reports whether any parent was recomputed in this run.
	AncestorsRetrained bool
}

// Decide returns what a task must do. The inference context always transforms.
// The training context serves the persisted output only when the block is fitted,
// the output exists, and neither the caller nor a retrained parent invalidated it.
func Decide(phase Phase, s CacheState) Decision {
	if !phase.IsFit() {
		return DecisionTransform
	}
	if s.Fitted && s.HasOutput && !s.IgnoreCache && !s.AncestorsRetrained {
		return DecisionServe
	}
	return DecisionRecompute
}
