// Package editor implements the edit workflow: resolve a contact by
// path or search query, open it in the user's editor, and remove the
// file if the user cleared it.
package editor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
)

// Outcome reports what happened to the contact after the editor ran.
type Outcome int

const (
	// Edited means the file still has content after the edit.
	Edited Outcome = iota
	// Removed means the user cleared the file and it was deleted.
	Removed
)

// ErrNoMatch is returned when the query resolves to no contact.
var ErrNoMatch = errors.New("no such contact")

// AmbiguousError is returned when a query matches more than one
// contact. The query is not resolved silently; all candidates are
// listed so the user can pick one.
type AmbiguousError struct {
	Query      string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous query %q matches %d contacts:\n%s",
		e.Query, len(e.Candidates), strings.Join(e.Candidates, "\n"))
}

// Options configures Edit.
type Options struct {
	// Lookup resolves a search query to contact file paths, typically
	// the index's filepath projection.
	Lookup func(query string) ([]string, error)

	// Stdin is the process's own standard input. Defaults to os.Stdin.
	Stdin *os.File

	Logger *slog.Logger
}

// Edit resolves queryOrPath to one contact file under dir and opens it
// in editorCmd. If queryOrPath names an existing file directly under
// dir it wins without a search; otherwise the lookup must produce
// exactly one path.
//
// When our own stdin is not a terminal (the message was piped in), the
// editor's stdin is reattached to /dev/tty so an interactive editor
// still works. The editor command may contain flags; it runs through
// the shell with the file path appended.
//
// After the editor exits, a file whose trimmed content is empty is
// deleted and Removed is returned. Anything else is Edited. Cancelling
// ctx kills a still-running editor and surfaces the cancellation.
func Edit(ctx context.Context, dir, queryOrPath, editorCmd string, opts Options) (Outcome, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	if editorCmd == "" {
		return 0, errors.New("no editor configured")
	}

	path, err := resolve(dir, queryOrPath, opts.Lookup)
	if err != nil {
		return 0, err
	}

	if err := runEditor(ctx, editorCmd, path, opts.Stdin, log); err != nil {
		return 0, fmt.Errorf("run editor: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read contact after edit: %w", err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		if err := os.Remove(path); err != nil {
			return 0, fmt.Errorf("remove emptied contact: %w", err)
		}
		log.Info("contact emptied, file removed", "path", path)
		return Removed, nil
	}
	return Edited, nil
}

// resolve picks the single contact file for queryOrPath: a direct file
// under dir, or the unique search match.
func resolve(dir, queryOrPath string, lookup func(string) ([]string, error)) (string, error) {
	direct := filepath.Join(dir, queryOrPath)
	if fi, err := os.Stat(direct); err == nil && fi.Mode().IsRegular() {
		return direct, nil
	}

	if lookup == nil {
		return "", ErrNoMatch
	}
	paths, err := lookup(queryOrPath)
	if err != nil {
		return "", fmt.Errorf("search index: %w", err)
	}
	switch len(paths) {
	case 0:
		return "", ErrNoMatch
	case 1:
		return paths[0], nil
	default:
		return "", &AmbiguousError{Query: queryOrPath, Candidates: paths}
	}
}

// runEditor opens path in the user's editor, reattaching stdin to the
// controlling terminal when ours is not one.
func runEditor(ctx context.Context, editorCmd, path string, stdin *os.File, log *slog.Logger) error {
	if stdin == nil {
		stdin = os.Stdin
	}

	in := stdin
	if !isatty.IsTerminal(stdin.Fd()) {
		if tty, err := os.Open("/dev/tty"); err == nil {
			defer tty.Close()
			in = tty
		} else {
			log.Debug("cannot open /dev/tty, editor inherits stdin", "error", err)
		}
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", editorCmd+` "$1"`, "mates-editor", path)
	cmd.Stdin = in
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		// A kill caused by ctx shows up as a plain exit error; report
		// the cancellation itself.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
