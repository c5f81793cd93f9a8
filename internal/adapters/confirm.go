package adapters

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"artifact-cleaner/internal/ports"
	"artifact-cleaner/internal/shared"
	"artifact-cleaner/internal/types"
)

// AutoConfirmAdapter approves every candidate without asking.
type AutoConfirmAdapter struct {
	Out io.Writer
}

func NewAutoConfirmAdapter(out io.Writer) AutoConfirmAdapter {
	return AutoConfirmAdapter{Out: out}
}

func (a AutoConfirmAdapter) ConfirmDeletion(_ context.Context, candidate types.VersionDecision) (bool, error) {
	fmt.Fprintf(a.Out, "%s: Deleting obsolete version (%s)... ", candidate.Version, shared.FormatPublishDate(candidate.CreatedAt))
	return true, nil
}

// PromptConfirmAdapter asks a y/n question per candidate and reads one line
// of answer. Only "y" in either case approves.
type PromptConfirmAdapter struct {
	Out    io.Writer
	reader *bufio.Reader
}

func NewPromptConfirmAdapter(in io.Reader, out io.Writer) *PromptConfirmAdapter {
	return &PromptConfirmAdapter{Out: out, reader: bufio.NewReader(in)}
}

func (a *PromptConfirmAdapter) ConfirmDeletion(_ context.Context, candidate types.VersionDecision) (bool, error) {
	fmt.Fprintf(a.Out, "%s: obsolete version (%s). Delete (y/n)? ", candidate.Version, shared.FormatPublishDate(candidate.CreatedAt))
	line, err := a.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return false, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read answer").
				WithCause(err)
		}
		// A final unterminated line still counts as an answer.
		if line == "" {
			return false, types.ErrInputClosed
		}
	}
	answer := strings.TrimRight(line, "\r\n")
	if !strings.EqualFold(answer, "y") {
		return false, nil
	}
	fmt.Fprint(a.Out, "deleting... ")
	return true, nil
}

var (
	_ ports.ConfirmPort = AutoConfirmAdapter{}
	_ ports.ConfirmPort = (*PromptConfirmAdapter)(nil)
)
