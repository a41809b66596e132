package history

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/atotto/clipboard"
)

// Sharer hands an exported file to the user's share target.
type Sharer interface {
	Share(ctx context.Context, path string, data []byte) error
}

// SharerFunc adapts a function to Sharer.
type SharerFunc func(ctx context.Context, path string, data []byte) error

func (f SharerFunc) Share(ctx context.Context, path string, data []byte) error {
	return f(ctx, path, data)
}

// NoopSharer leaves the file where it was written.
type NoopSharer struct{}

func (NoopSharer) Share(context.Context, string, []byte) error { return nil }

// ClipboardSharer copies the exported JSON to the system clipboard.
type ClipboardSharer struct {
	write func(string) error
}

var errNoClipboard = errors.New("no clipboard utility available")

func NewClipboardSharer() *ClipboardSharer {
	if clipboard.Unsupported {
		return &ClipboardSharer{write: func(string) error { return errNoClipboard }}
	}
	return &ClipboardSharer{write: clipboard.WriteAll}
}

func (s *ClipboardSharer) Share(ctx context.Context, _ string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.write == nil {
		return errNoClipboard
	}
	if err := s.write(string(data)); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}

// Share modes accepted by NewSharer.
const (
	ShareClipboard = "clipboard"
	ShareNone      = "none"
)

// NewSharer maps a configured share mode to a Sharer. Clipboard mode falls
// back to NoopSharer on hosts with no clipboard utility, so the written file
// still counts as a successful export.
func NewSharer(mode string, logger *slog.Logger) (Sharer, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ShareClipboard:
		if clipboard.Unsupported {
			logger.Debug("no clipboard utility; exports stay on disk", "mode", mode)
			return NoopSharer{}, nil
		}
		return NewClipboardSharer(), nil
	case ShareNone, "":
		return NoopSharer{}, nil
	default:
		return nil, fmt.Errorf("unknown share mode %q (want %s or %s)", mode, ShareClipboard, ShareNone)
	}
}
