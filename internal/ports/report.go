package ports

import "artifact-cleaner/internal/types"

type ReportPort interface {
	WriteCleanReport(report types.CleanReport) error
}
