package binary

import "fmt"

// Kind identifies the type of binary a component declares.
// The set is closed; observers filter on it instead of inspecting types.
type Kind int

const (
	// KindJar is a packaged jar archive produced from a library
	KindJar Kind = iota + 1

	// KindClasses is an unpackaged class directory
	KindClasses
)

var kindNames = map[Kind]string{
	KindJar:     "jar",
	KindClasses: "classes",
}

// String returns the configuration name of the kind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// ParseKind maps a configuration name to a Kind
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("invalid binary kind: %s (must be 'jar' or 'classes')", name)
}
