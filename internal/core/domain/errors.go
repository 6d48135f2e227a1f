package domain

import "go.trai.ch/zerr"

var (
	// ErrGraphCycle is returned when the parent relation of the requested blocks contains a cycle.
	ErrGraphCycle = zerr.New("cycle detected in block graph")

	// ErrInvalidBlockOutput is returned when a block produced a malformed table or changed the row count.
	ErrInvalidBlockOutput = zerr.New("invalid block output")

	// ErrNotFitted is returned when inference is requested on a block without fitted state in its namespace.
	ErrNotFitted = zerr.New("block is not fitted")

	// ErrMissingUpstreamOutput is returned when a parent's output is neither in the run cache nor in the backend.
	ErrMissingUpstreamOutput = zerr.New("missing upstream output")

	// ErrBlockAlreadyExists is returned when two different blocks share the same key.
	ErrBlockAlreadyExists = zerr.New("block already exists")

	// ErrMissingDependency is returned when a node references a parent that is not part of the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrNoBlocks is returned when a run is requested without any block.
	ErrNoBlocks = zerr.New("no blocks requested")

	// ErrTaskExecutionFailed is returned when a single task fails.
	ErrTaskExecutionFailed = zerr.New("task execution failed")

	// ErrUnknownBlock is returned when a requested block is not declared in the pipeline.
	ErrUnknownBlock = zerr.New("block not declared in pipeline")

	// ErrRowCountMismatch is returned when tables with different row counts are combined.
	ErrRowCountMismatch = zerr.New("row count mismatch")

	// ErrDuplicateColumn is returned when a table would contain the same column name twice.
	ErrDuplicateColumn = zerr.New("duplicate column")

	// ErrEmptyColumnName is returned when a column has no name.
	ErrEmptyColumnName = zerr.New("empty column name")

	// ErrColumnNotFound is returned when a named column does not exist.
	ErrColumnNotFound = zerr.New("column not found")

	// ErrLabelsRequired is returned when a block needs labels to fit but none were given.
	ErrLabelsRequired = zerr.New("labels are required to fit this block")

	// ErrUnseenClass is returned when a training fold lacks a class present in the full label set.
	// It is an ErrInvalidBlockOutput.
	ErrUnseenClass = zerr.Wrap(ErrInvalidBlockOutput, "class missing from training fold")

	// ErrInvalidLabels is returned when labels do not fit the block, such as non-binary labels
	// for a binary classifier or a label count that differs from the row count.
	ErrInvalidLabels = zerr.New("invalid labels")

	// ErrInvalidParam is returned when a block parameter is out of range.
	ErrInvalidParam = zerr.New("invalid block parameter")

	// ErrUnknownBlockKind is returned when the configuration references an unknown block kind.
	ErrUnknownBlockKind = zerr.New("unknown block kind")

	// ErrReservedBlockName is returned when a block uses a reserved name.
	ErrReservedBlockName = zerr.New("block name 'all' is reserved")

	// ErrInvalidBlockName is returned when a block name contains invalid characters.
	ErrInvalidBlockName = zerr.New("invalid block name")

	// ErrUnknownBackendDriver is returned when the configuration names an unknown backend driver.
	ErrUnknownBackendDriver = zerr.New("unknown backend driver")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrObjectNotFound is returned when a storage key does not exist in a namespace.
	ErrObjectNotFound = zerr.New("object not found")

	// ErrInvalidObjectName is returned when a namespace, key or artifact name cannot be stored safely.
	ErrInvalidObjectName = zerr.New("invalid object name")

	// ErrStoreCreateFailed is returned when the backend storage location cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create backend storage")

	// ErrStoreReadFailed is returned when an object cannot be read from the backend.
	ErrStoreReadFailed = zerr.New("failed to read object")

	// ErrStoreWriteFailed is returned when an object cannot be written to the backend.
	ErrStoreWriteFailed = zerr.New("failed to write object")

	// ErrStoreMarshalFailed is returned when an object cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal object")

	// ErrStoreUnmarshalFailed is returned when an object cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal object")

	// ErrDatasetReadFailed is returned when a dataset file cannot be read or parsed.
	ErrDatasetReadFailed = zerr.New("failed to read dataset")

	// ErrDatasetWriteFailed is returned when a dataset file cannot be written.
	ErrDatasetWriteFailed = zerr.New("failed to write dataset")
)
