package domain

import "path/filepath"

const (
	// KilnDirName is the name of the internal workspace directory.
	KilnDirName = ".kiln"

	// ExperimentsDirName is the name of the local experiment backend directory.
	ExperimentsDirName = "experiments"

	// SQLiteFileName is the name of the sqlite experiment database.
	SQLiteFileName = "experiments.db"

	// ConfigFileName is the name of the pipeline configuration file.
	ConfigFileName = "kiln.yaml"

	// ArtifactsDirName holds run-level artifacts such as the out-of-fold frame.
	ArtifactsDirName = "_artifacts"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultKilnPath returns the default root directory for kiln metadata.
func DefaultKilnPath() string {
	return KilnDirName
}

// DefaultExperimentPath returns the default path for the local experiment backend.
// It joins .kiln and experiments.
func DefaultExperimentPath() string {
	return filepath.Join(KilnDirName, ExperimentsDirName)
}

// DefaultSQLitePath returns the default path for the sqlite experiment backend.
// It joins .kiln and experiments.db.
func DefaultSQLitePath() string {
	return filepath.Join(KilnDirName, SQLiteFileName)
}
