package domain

// VertexStatus represents the lifecycle state of a task as reported to telemetry.
type VertexStatus string

const (
	// VertexStatusPending indicates the task has not started yet.
	VertexStatusPending VertexStatus = "pending"
	// VertexStatusRunning indicates the task is assembling its input or executing.
	VertexStatusRunning VertexStatus = "running"
	// VertexStatusCompleted indicates the block was fitted or transformed successfully.
	VertexStatusCompleted VertexStatus = "completed"
	// VertexStatusFailed indicates the task failed and aborted the run.
	VertexStatusFailed VertexStatus = "failed"
	// VertexStatusCached indicates the persisted output was served without recomputation.
	VertexStatusCached VertexStatus = "cached"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// IsTerminal checks if a status is a terminal state (Completed, Failed, Cached).
func (s VertexStatus) IsTerminal() bool {
	switch s {
	case VertexStatusCompleted, VertexStatusFailed, VertexStatusCached:
		return true
	default:
		return false
	}
}

// Status derives the telemetry status of a task from its run flags.
func (t *Task) Status() VertexStatus {
	switch {
	case t.Completed && t.RunFit:
		return VertexStatusCompleted
	case t.Completed:
		return VertexStatusCached
	default:
		return VertexStatusPending
	}
}
