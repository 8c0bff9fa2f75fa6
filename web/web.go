// Package web carries the browser client, compiled into the binary so
// the API ships as a single artifact.
package web

import "embed"

//go:embed static
var Static embed.FS
