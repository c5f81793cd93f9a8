package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"artifact-cleaner/internal/core"
	"artifact-cleaner/internal/shared"
	"artifact-cleaner/internal/types"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	failureColor = color.New(color.FgRed)
)

// Clean walks the package's versions oldest first and removes obsolete
// development and pre-release builds. Listing and metadata failures abort the
// run; delete failures are reported per version.
func (s Service) Clean(ctx context.Context, req CleanRequest) (CleanResult, error) {
	assert.NotEmpty(ctx, req.Package.Owner, "package owner must be set")
	assert.NotEmpty(ctx, req.Package.Repo, "package repo must be set")
	assert.NotEmpty(ctx, req.Package.Package, "package name must be set")
	out := s.Out
	if out == nil {
		out = io.Discard
	}
	logger := log.Ctx(ctx)

	versions, err := s.Registry.ListVersions(ctx, req.Package)
	if err != nil {
		return CleanResult{}, err
	}
	fmt.Fprintf(out, "Found %d version(s)\n", len(versions))

	now := timeNow(s.Clock)
	cutoff := core.Cutoff(now, s.Policy)
	preserved := core.PreservedSet(versions, s.Policy.PreserveCount)
	logger.Debug().
		Int("versions", len(versions)).
		Int("preserved", len(preserved)).
		Time("cutoff", cutoff).
		Msg("retention computed")

	result := CleanResult{
		Report: types.CleanReport{
			Owner:     req.Package.Owner,
			Repo:      req.Package.Repo,
			Package:   req.Package.Package,
			StartedAt: now,
			Found:     len(versions),
		},
	}
	record := func(decision types.VersionDecision) {
		result.Report.Decisions = append(result.Report.Decisions, decision)
		switch decision.Decision {
		case types.DecisionDeleted, types.DecisionDryRun:
			result.Deleted++
		case types.DecisionTimeout, types.DecisionFailed:
			result.Failed++
		default:
			result.Skipped++
		}
		logger.Debug().
			Str("version", decision.Version).
			Str("type", string(decision.Type)).
			Str("decision", string(decision.Decision)).
			Msg("version processed")
	}

	for _, version := range core.Reversed(versions) {
		kind := core.ClassifyVersion(version)
		entry := types.VersionDecision{Version: version, Type: kind}
		switch core.PreliminaryDecision(version, kind, preserved) {
		case types.DecisionSkipType:
			fmt.Fprintf(out, "%s: skipping %s publication\n", version, kind)
			entry.Decision = types.DecisionSkipType
			record(entry)
			continue
		case types.DecisionSkipPreserved:
			fmt.Fprintf(out, "%s: skipping, preserving last %d build(s)\n", version, s.Policy.PreserveCount)
			entry.Decision = types.DecisionSkipPreserved
			record(entry)
			continue
		}

		info, err := s.Registry.GetVersion(ctx, req.Credentials, req.Package, version)
		if err != nil {
			return result, err
		}
		entry.CreatedAt = info.CreatedAt
		if core.TooNew(info.CreatedAt, cutoff) {
			fmt.Fprintf(out, "%s: skipping, relatively new (%s)\n", version, shared.FormatPublishDate(info.CreatedAt))
			entry.Decision = types.DecisionSkipRecent
			record(entry)
			continue
		}

		approved, err := s.Confirm.ConfirmDeletion(ctx, entry)
		if errors.Is(err, types.ErrInputClosed) {
			fmt.Fprintln(out)
			logger.Debug().Str("version", version).Msg("input closed, stopping")
			result.Report.Stopped = true
			break
		}
		if err != nil {
			return result, err
		}
		if !approved {
			entry.Decision = types.DecisionDeclined
			record(entry)
			continue
		}

		entry.Decision, entry.Outcome, err = s.deleteVersion(ctx, req, version)
		if err != nil {
			fmt.Fprintln(out)
			return result, err
		}
		record(entry)
	}

	if s.Report != nil {
		if err := s.Report.WriteCleanReport(result.Report); err != nil {
			return result, err
		}
	}
	logger.Info().
		Int("found", result.Report.Found).
		Int("deleted", result.Deleted).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Bool("dry_run", req.Options.Has(types.CliOptionDryRun)).
		Msg("clean finished")
	return result, nil
}

// deleteVersion performs or simulates the removal and prints the outcome on
// the line opened by the confirmation. Only transport failures other than
// timeouts are returned as errors.
func (s Service) deleteVersion(ctx context.Context, req CleanRequest, version string) (types.Decision, string, error) {
	out := s.Out
	if out == nil {
		out = io.Discard
	}
	if req.Options.Has(types.CliOptionDryRun) {
		message := "ok (dry run)."
		successColor.Fprintln(out, message)
		return types.DecisionDryRun, message, nil
	}

	started := time.Now()
	err := s.Registry.DeleteVersion(ctx, req.Credentials, req.Package, version)
	took := int(time.Since(started) / time.Second)

	var statusErr *types.StatusError
	switch {
	case err == nil:
		message := fmt.Sprintf("ok (took %d s).", took)
		successColor.Fprintln(out, message)
		return types.DecisionDeleted, message, nil
	case errors.Is(err, types.ErrTimeout):
		message := "timeout."
		warningColor.Fprintln(out, message)
		return types.DecisionTimeout, message, nil
	case errors.As(err, &statusErr):
		failureColor.Fprintln(out, statusErr.Message)
		return types.DecisionFailed, statusErr.Message, nil
	default:
		return "", "", err
	}
}
