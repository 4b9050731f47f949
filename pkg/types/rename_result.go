package types

// RenameResult records the outcome of a single positional rename.
type RenameResult struct {
	SourcePath      string
	DestinationPath string
	Renamed         bool
	Error           error
}
