package worker

import (
	"bufio"
	"io"
	"strings"
)

// ReadTargets reads lookup targets from r, one per line. Whitespace is
// trimmed; blank lines and comment lines starting with "#" are dropped, so
// annotated target lists can be piped in as-is.
func ReadTargets(r io.Reader) ([]string, error) {
	var targets []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		targets = append(targets, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return targets, nil
}
