package types

// Version is the application version, overridden at build time with
// -ldflags "-X github.com/fedora-notofonts/notofonts/pkg/domain/types.Version=..."
var Version = "dev"
