package model

// ReleaseInfo represents a tagged release extracted from a webhook event
type ReleaseInfo struct {
	Repo    RepoID           // Repository the tag belongs to
	TagRef  string           // Tag reference, e.g. refs/tags/1.2.3
	Actor   string           // User who created the tag or release
	Trigger WebhookEventType // Event that announced the release
}
