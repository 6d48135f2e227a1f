package domain

const (
	// TrainOutputKey is the storage key of a block's output in the training context.
	TrainOutputKey = "train_output"
	// TestOutputKey is the storage key of a block's output in the inference context.
	TestOutputKey = "test_output"
	// OutOfFoldsArtifact is the name of the combined estimator output saved after training.
	OutOfFoldsArtifact = "out_of_folds"
	// TimingsKey is the storage key holding per-label elapsed times of a namespace.
	TimingsKey = "timings"
	// OutputInfoSuffix is appended to a storage key to name its metadata record.
	OutputInfoSuffix = ".info"
)

// Phase is the execution context of a run.
type Phase int

const (
	// PhaseTrain fits blocks and persists their fitted state.
	PhaseTrain Phase = iota
	// PhasePredict applies previously fitted state and never trains.
	PhasePredict
)

// StorageKey returns the key under which block outputs are persisted in this phase.
func (p Phase) StorageKey() string {
	if p == PhaseTrain {
		return TrainOutputKey
	}
	return TestOutputKey
}

// IsFit reports whether the phase trains blocks.
func (p Phase) IsFit() bool {
	return p == PhaseTrain
}

func (p Phase) String() string {
	switch p {
	case PhaseTrain:
		return "fit"
	case PhasePredict:
		return "predict"
	default:
		return "unknown"
	}
}
