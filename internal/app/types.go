package app

import "artifact-cleaner/internal/types"

type CleanRequest struct {
	Package     types.PackageCoordinates
	Credentials types.Credentials
	Options     types.CliOptions
}

type CleanResult struct {
	Report  types.CleanReport
	Deleted int
	Skipped int
	Failed  int
}
