package toolchain

import (
	"fmt"
	"strconv"
	"strings"
)

// Platform describes the JVM a binary is built for
type Platform struct {
	Name          string // As declared, e.g. "java8"
	TargetVersion int    // Major Java version, e.g. 8
}

// String returns the declared platform name
func (p Platform) String() string {
	return p.Name
}

var platformPrefixes = []string{"java", "jvm"}

// ParsePlatform parses platform descriptors of the form java<N> or jvm<N>.
// The legacy 1.N form is accepted for N <= 8 and normalised to N.
func ParsePlatform(name string) (Platform, error) {
	if name == "" {
		return Platform{}, fmt.Errorf("platform cannot be empty")
	}

	for _, prefix := range platformPrefixes {
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		version, err := parseJavaVersion(strings.TrimPrefix(name, prefix))
		if err != nil {
			return Platform{}, fmt.Errorf("invalid platform '%s': %w", name, err)
		}
		return Platform{Name: name, TargetVersion: version}, nil
	}

	return Platform{}, fmt.Errorf("invalid platform '%s' (must be 'java<version>' or 'jvm<version>')", name)
}

func parseJavaVersion(s string) (int, error) {
	if rest, ok := strings.CutPrefix(s, "1."); ok {
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 || n > 8 {
			return 0, fmt.Errorf("unsupported legacy version '%s'", s)
		}
		return n, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("version must be a positive integer, got '%s'", s)
	}
	return n, nil
}
