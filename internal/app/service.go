package app

import (
	"io"
	"os"
	"time"

	"artifact-cleaner/internal/core"
	"artifact-cleaner/internal/ports"
	"artifact-cleaner/internal/types"
)

type Service struct {
	Registry ports.VersionRegistryPort
	Confirm  ports.ConfirmPort
	Report   ports.ReportPort
	Out      io.Writer
	Policy   types.RetentionPolicy
	Clock    func() time.Time
}

func NewService(registry ports.VersionRegistryPort, confirm ports.ConfirmPort) Service {
	return Service{
		Registry: registry,
		Confirm:  confirm,
		Out:      os.Stdout,
		Policy:   core.DefaultRetentionPolicy(),
		Clock:    time.Now,
	}
}

func timeNow(clock func() time.Time) time.Time {
	if clock == nil {
		return time.Now().UTC()
	}
	return clock().UTC()
}
