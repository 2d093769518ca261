package tools

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is set at build time with
// `-ldflags "-X github.com/JackGrayDPD/load-csv-to-bq.Version=x.y.z"`.
// When unset the module version recorded by `go install` is used.
var Version = "-"

func version() string {
	if Version != "-" && Version != "" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return Version
}

func String() string {
	return fmt.Sprintf(
		"%s (built w/%s)",
		version(),
		runtime.Version(),
	)
}
