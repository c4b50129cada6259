package layout

import (
	"fmt"
	"path/filepath"
)

const (
	// JarsDirName is the directory under the build root holding packaged jars
	JarsDirName = "jars"

	// ClassesDirName is the directory under the build root holding compiled output
	ClassesDirName = "classes"
)

// BuildLayout supplies the root output directory for one build invocation.
// The root is fixed once constructed.
type BuildLayout struct {
	root string
}

// New creates a BuildLayout rooted at dir. Relative paths are made absolute
// against the current working directory.
func New(dir string) (BuildLayout, error) {
	if dir == "" {
		return BuildLayout{}, fmt.Errorf("build directory cannot be empty")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return BuildLayout{}, fmt.Errorf("failed to resolve build directory %s: %w", dir, err)
	}

	return BuildLayout{root: abs}, nil
}

// RootDir returns the absolute build root
func (l BuildLayout) RootDir() string {
	return l.root
}

// JarsDir returns root/jars
func (l BuildLayout) JarsDir() string {
	return filepath.Join(l.root, JarsDirName)
}

// ClassesDir returns root/classes
func (l BuildLayout) ClassesDir() string {
	return filepath.Join(l.root, ClassesDirName)
}
