package index

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Result is one matched index line. Fields are plain owned strings;
// a short or malformed line shows up as empty trailing fields, never
// as an error.
type Result struct {
	Email string
	Name  string
	Path  string
}

// Query feeds the whole index at indexPath to the filter subprocess and
// parses its stdout back into Results, in filter output order.
//
// filter is the command argv (program plus fixed arguments); the query
// string is always appended as one extra positional argument. The
// filter reads the index on stdin and writes matching lines to stdout.
// A non-zero filter exit is not an error: a grep that matches nothing
// exits 1, and an empty match set is a valid outcome. Failing to read
// the index, spawn the filter, or capture its output is — as is ctx
// being cancelled while the filter runs.
func Query(ctx context.Context, indexPath, query string, filter []string) ([]Result, error) {
	if len(filter) == 0 {
		return nil, errors.New("no filter command configured")
	}

	in, err := os.Open(indexPath)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer in.Close()

	args := append(filter[1:len(filter):len(filter)], query)

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, filter[0], args...)
	cmd.Stdin = in
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		// A kill caused by ctx shows up as a plain exit error; report
		// the cancellation itself instead.
		if ctx.Err() != nil {
			return nil, fmt.Errorf("run filter %s: %w", filter[0], ctx.Err())
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("run filter %s: %w", filter[0], err)
		}
	}

	var results []Result
	for _, line := range strings.Split(out.String(), "\n") {
		if line == "" {
			continue
		}
		results = append(results, parseLine(line))
	}
	return results, nil
}

// parseLine splits an index line into up to three tab-separated fields.
// Missing trailing fields stay empty.
func parseLine(line string) Result {
	var r Result
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) > 0 {
		r.Email = parts[0]
	}
	if len(parts) > 1 {
		r.Name = parts[1]
	}
	if len(parts) > 2 {
		r.Path = parts[2]
	}
	return r
}

// MuttLines renders results the way mutt's query_command expects:
// email, name and path tab-separated. Rows missing the email or the
// name are dropped rather than rendered half-empty.
func MuttLines(results []Result) []string {
	var lines []string
	for _, r := range results {
		if r.Email != "" && r.Name != "" {
			lines = append(lines, fmt.Sprintf("%s\t%s\t%s", r.Email, r.Name, r.Path))
		}
	}
	return lines
}

// FilePaths returns the source file path of every result that has one.
func FilePaths(results []Result) []string {
	var paths []string
	for _, r := range results {
		if r.Path != "" {
			paths = append(paths, r.Path)
		}
	}
	return paths
}

// EmailLines renders results as "Name <email>", dropping rows missing
// either part.
func EmailLines(results []Result) []string {
	var lines []string
	for _, r := range results {
		if r.Email != "" && r.Name != "" {
			lines = append(lines, fmt.Sprintf("%s <%s>", r.Name, r.Email))
		}
	}
	return lines
}
