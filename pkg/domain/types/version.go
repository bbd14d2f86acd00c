package types

// Version is the readmebump release version. Overwritten at build time via
// -ldflags "-X github.com/m-mizutani/readmebump/pkg/domain/types.Version=..."
var Version = "dev"
