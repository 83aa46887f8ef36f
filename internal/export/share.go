package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/andy/pizzabill/internal/logger"
	"github.com/atotto/clipboard"
)

// TitleEnv carries the share title to the share command
const TitleEnv = "PIZZABILL_SHARE_TITLE"

var ErrShareUnsupported = errors.New("system share is not available")

// Sharer hands invoice text to something outside the program
type Sharer interface {
	Share(ctx context.Context, title, text string) error
}

// CommandSharer pipes the text into a configured system share command
type CommandSharer struct {
	Command string
}

// NewCommandSharer creates a sharer for the given command line
func NewCommandSharer(command string) *CommandSharer {
	return &CommandSharer{Command: command}
}

func (s *CommandSharer) Share(ctx context.Context, title, text string) error {
	fields := strings.Fields(s.Command)
	if len(fields) == 0 {
		return ErrShareUnsupported
	}

	cmd := exec.CommandContext(ctx, fields[0], fields[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Env = append(os.Environ(), TitleEnv+"="+title)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("share command failed: %w: %s", err, msg)
		}
		return fmt.Errorf("share command failed: %w", err)
	}
	return nil
}

// ClipboardSharer copies the text to the system clipboard
type ClipboardSharer struct{}

func (ClipboardSharer) Share(ctx context.Context, title, text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: %w", ErrShareUnsupported)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

// ShareResult tells which path delivered the text
type ShareResult int

const (
	Shared ShareResult = iota + 1
	Copied
)

// Message is the user-facing confirmation for a result
func (r ShareResult) Message() string {
	switch r {
	case Shared:
		return "Shared successfully!"
	case Copied:
		return "Invoice details copied to clipboard! Paste them in Messenger."
	default:
		return ""
	}
}

// ShareChain tries the system share first and falls back to the clipboard
type ShareChain struct {
	System    Sharer
	Clipboard Sharer
}

// NewShareChain builds the default chain for a share command
func NewShareChain(command string) *ShareChain {
	return &ShareChain{
		System:    NewCommandSharer(command),
		Clipboard: ClipboardSharer{},
	}
}

// Share delivers the text. The error carries both failures when nothing worked.
func (c *ShareChain) Share(ctx context.Context, title, text string) (ShareResult, error) {
	log := logger.WithComponent("share")

	sysErr := ErrShareUnsupported
	if c.System != nil {
		sysErr = c.System.Share(ctx, title, text)
		if sysErr == nil {
			log.Debug().Str("title", title).Msg("shared via system")
			return Shared, nil
		}
	}
	if !errors.Is(sysErr, ErrShareUnsupported) {
		log.Warn().Err(sysErr).Msg("system share failed, trying clipboard")
	}

	if c.Clipboard == nil {
		return 0, fmt.Errorf("unable to share invoice: %w", sysErr)
	}
	clipErr := c.Clipboard.Share(ctx, title, text)
	if clipErr == nil {
		log.Debug().Str("title", title).Msg("copied to clipboard")
		return Copied, nil
	}

	log.Error().Err(clipErr).Msg("clipboard fallback failed")
	return 0, fmt.Errorf("unable to share invoice: %w", errors.Join(sysErr, clipErr))
}
