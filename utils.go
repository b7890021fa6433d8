package main

import (
	"fmt"
	"os"
	"time"
)

func debugEnabled() bool {
	return os.Getenv(debugEnvVar) != ""
}

// exportFilename builds a timestamped name so repeated exports never
// overwrite each other.
func exportFilename(t time.Time, ext string) string {
	return fmt.Sprintf("sketch-%s%s", t.Format("20060102-150405"), ext)
}

func sketchFilename(t time.Time) string {
	return exportFilename(t, sketchExt)
}
