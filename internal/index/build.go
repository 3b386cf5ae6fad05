// Package index builds and queries the flat contact index: one
// tab-separated line per (contact, email address) pair, rebuilt
// wholesale from the contact directory. The index is a disposable
// cache; the .vcf files stay the source of truth.
package index

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/vdirtools/mates/internal/vdir"
)

// Build scans dir and rewrites the index at outPath from scratch.
//
// Only regular files are indexed (symlinks are followed; subdirectories
// are skipped). A file that fails to parse, or a card without a
// formatted name, is logged and skipped without failing the build:
// a broken record must not take the rest of the index down with it.
func Build(dir, outPath string, log *slog.Logger) error {
	if log == nil {
		log = slog.Default()
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat contact directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("contact directory %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read contact directory: %w", err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create index file: %w", err)
	}
	defer out.Close()
	w := bufio.NewWriter(out)

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}

		log.Info("processing", "path", path)

		f, err := os.Open(path)
		if err != nil {
			log.Warn("cannot open contact, skipping", "path", path, "error", err)
			continue
		}
		card, err := vdir.Decode(f)
		f.Close()
		if err != nil {
			log.Warn("cannot parse contact, skipping", "path", path, "error", err)
			continue
		}

		name := vdir.FullName(card)
		if name == "" {
			log.Warn("contact has no name, skipping", "path", path)
			continue
		}

		for _, email := range vdir.Emails(card) {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", email, name, path); err != nil {
				return fmt.Errorf("write index line: %w", err)
			}
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush index: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close index: %w", err)
	}
	return nil
}
