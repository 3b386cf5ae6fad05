// Package contact creates new contact records from raw email messages.
package contact

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/vdirtools/mates/internal/sender"
	"github.com/vdirtools/mates/internal/vdir"
)

// ErrNoSender is returned when the message carries no From header.
// Creating a contact requires an identifiable sender.
var ErrNoSender = errors.New("no From header in message")

// newIdentifier generates a fresh contact identifier. Overridable in
// tests to force filename collisions.
var newIdentifier = func() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Create reads one raw email message from r and writes a new contact
// record for its sender into dir. It returns the created file's path.
//
// The record gets a random identifier, used both as the UID field and
// as the base filename. If the generated filename already exists the
// identifier is regenerated until a free name is found; a collision is
// never surfaced to the caller. The file is written via a temp file and
// rename so a concurrent reader never sees a half-written record.
func Create(dir string, r io.Reader, log *slog.Logger) (string, error) {
	if log == nil {
		log = slog.Default()
	}

	message, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read message: %w", err)
	}

	value, ok := sender.FromHeader(bytes.NewReader(message))
	if !ok {
		return "", ErrNoSender
	}
	name, email := sender.SplitAddress(value)

	var uid, path string
	for {
		uid = newIdentifier()
		path = filepath.Join(dir, uid+".vcf")
		_, err := os.Lstat(path)
		if err == nil {
			log.Debug("identifier collision, regenerating", "path", path)
			continue
		}
		// Anything other than "does not exist" (unreadable directory,
		// not a directory) would fail for every identifier; stop
		// probing and let the write report it.
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debug("cannot probe contact path", "path", path, "error", err)
		}
		break
	}

	card := vdir.New(name, email, uid)
	if err := writeAtomic(path, func(w io.Writer) error {
		return vdir.Encode(w, card)
	}); err != nil {
		return "", fmt.Errorf("write contact: %w", err)
	}

	log.Debug("contact created", "path", path, "name", name, "email", email)
	return path, nil
}

// writeAtomic writes via a temp file in the same directory and renames
// it into place.
func writeAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".mates-*")
	if err != nil {
		return err
	}
	defer func() {
		if tmp != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := write(tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return err
	}
	tmp = nil
	return nil
}
