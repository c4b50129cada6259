package printer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	prevOut, prevErr := stdout, stderr
	prevNoColor := color.NoColor
	color.NoColor = true
	SetOutput(out, errOut)
	t.Cleanup(func() {
		stdout, stderr = prevOut, prevErr
		color.NoColor = prevNoColor
	})
	return out, errOut
}

func TestError(t *testing.T) {
	t.Run("returns error with title", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "This is a test error", []string{})
		require.Error(t, err)
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, errOut.String(), "This is a test error")
	})

	t.Run("prints a single suggestion inline", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "Explanation", []string{"Try this fix"})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, errOut.String(), "Try this fix")
		assert.NotContains(t, errOut.String(), "Either:")
	})

	t.Run("numbers multiple suggestions", func(t *testing.T) {
		_, errOut := capture(t)
		err := Error("Test Error", "Explanation", []string{"First option", "Second option"})
		require.Equal(t, "Test Error", err.Error())
		assert.Contains(t, errOut.String(), "Either:")
		assert.Contains(t, errOut.String(), "1. First option")
		assert.Contains(t, errOut.String(), "2. Second option")
	})
}

func TestErrorWithContext_SortedKeys(t *testing.T) {
	_, errOut := capture(t)
	err := ErrorWithContext("Resolution failed", "", map[string]string{
		"Platform": "jvm99",
		"Binary":   "mylib:jar",
	}, nil)
	require.Equal(t, "Resolution failed", err.Error())

	text := errOut.String()
	assert.Less(t, strings.Index(text, "Binary: mylib:jar"), strings.Index(text, "Platform: jvm99"))
}

func TestSuccessAndWarningPrefixes(t *testing.T) {
	out, _ := capture(t)

	Success("done\n")
	Success("✓ already prefixed\n")
	Warning("careful\n")

	assert.Equal(t, "✓ done\n✓ already prefixed\n⚠️  careful\n", out.String())
}

func TestStep(t *testing.T) {
	out, _ := capture(t)

	Step("Writing %s\n", "build.yml")
	assert.Equal(t, "→ Writing build.yml\n", out.String())
}
