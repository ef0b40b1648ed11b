package cmd

import "fmt"

var (
	version   = "dev"
	buildTime = "unknown"
)

const versionTemplate = "{{.Name}} version {{.Version}}\n"

func versionString() string {
	return fmt.Sprintf("%s (built %s)", version, buildTime)
}

func userAgent() string {
	return "hitcall/" + version
}
