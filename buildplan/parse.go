package buildplan

import (
	"os"
	"strconv"
	"strings"

	"github.com/jamesrr39/goutil/errorsx"
)

// ParseFanout parses a comma-separated fan-out schedule such as "2,3,4".
// Whitespace around entries is ignored. Empty, non-numeric and negative entries are rejected.
func ParseFanout(s string) ([]int, errorsx.Error) {
	if strings.TrimSpace(s) == "" {
		return nil, errorsx.Errorf("fan-out schedule is empty")
	}

	parts := strings.Split(s, ",")
	fanout := make([]int, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errorsx.Errorf("fan-out for nesting level %d is empty", i+1)
		}

		count, err := strconv.Atoi(part)
		if nil != err {
			return nil, errorsx.Errorf("fan-out for nesting level %d is not a number: %q", i+1, part)
		}

		if count < 0 {
			return nil, errorsx.Errorf("fan-out for nesting level %d is negative: %d", i+1, count)
		}

		fanout = append(fanout, count)
	}

	return fanout, nil
}

// ParseDirMode parses an octal permission string. "0755", "755" and "0o755" are all accepted.
func ParseDirMode(s string) (os.FileMode, errorsx.Error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errorsx.Errorf("directory mode is empty")
	}

	digits := s
	if strings.HasPrefix(digits, "0o") || strings.HasPrefix(digits, "0O") {
		digits = digits[2:]
	}

	mode, err := strconv.ParseUint(digits, 8, 32)
	if nil != err {
		return 0, errorsx.Wrap(err, "mode", s)
	}

	if mode > uint64(os.ModePerm) {
		return 0, errorsx.Errorf("directory mode %q has bits outside of the permission bits", s)
	}

	return os.FileMode(mode), nil
}
