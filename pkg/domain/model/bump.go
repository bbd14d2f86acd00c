package model

// BumpRequest describes one README version bump
type BumpRequest struct {
	Repo    RepoID
	Version Version
	WorkDir string // Directory to clone into. Must be empty or absent.
}

// BumpResult reports what a bump did
type BumpResult struct {
	Readme     string // README file name relative to the repository root
	Changed    bool   // False when the README already referenced the version
	CommitHash string
	Retries    int // Number of rebase-and-retry cycles before the push landed
}
