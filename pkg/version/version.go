package version

// Version holds the docstream version. It is set at build time via
// -ldflags "-X github.com/primestack/docstream/pkg/version.Version=...".
var Version = "0.0.1"
