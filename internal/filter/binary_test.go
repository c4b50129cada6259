package filter

import (
	"testing"

	"github.com/dyluth/binrules/internal/binary"
	"github.com/dyluth/binrules/internal/toolchain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBinary(t *testing.T, lib, name string, kind binary.Kind, platform string) *binary.Artifact {
	t.Helper()
	p, err := toolchain.ParsePlatform(platform)
	require.NoError(t, err)
	a, err := binary.NewArtifact(binary.ID{Name: name, LibraryName: lib}, kind, p)
	require.NoError(t, err)
	return a
}

func TestCriteria_Matches(t *testing.T) {
	jar8 := newBinary(t, "core", "jar", binary.KindJar, "java8")
	classes17 := newBinary(t, "api", "main", binary.KindClasses, "jvm17")

	testCases := []struct {
		name     string
		criteria Criteria
		binary   *binary.Artifact
		want     bool
	}{
		{name: "no filters", criteria: Criteria{}, binary: jar8, want: true},
		{name: "library match", criteria: Criteria{Library: "core"}, binary: jar8, want: true},
		{name: "library mismatch", criteria: Criteria{Library: "core"}, binary: classes17, want: false},
		{name: "kind glob", criteria: Criteria{KindGlob: "j*"}, binary: jar8, want: true},
		{name: "kind glob mismatch", criteria: Criteria{KindGlob: "jar"}, binary: classes17, want: false},
		{name: "platform glob", criteria: Criteria{PlatformGlob: "jvm*"}, binary: classes17, want: true},
		{name: "platform glob mismatch", criteria: Criteria{PlatformGlob: "jvm*"}, binary: jar8, want: false},
		{name: "invalid glob", criteria: Criteria{PlatformGlob: "["}, binary: jar8, want: false},
		{name: "all criteria", criteria: Criteria{Library: "api", KindGlob: "classes", PlatformGlob: "jvm1?"}, binary: classes17, want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.criteria.Matches(tc.binary))
		})
	}
}

func TestCriteria_Apply(t *testing.T) {
	bins := []*binary.Artifact{
		newBinary(t, "core", "jar", binary.KindJar, "java8"),
		newBinary(t, "core", "main", binary.KindClasses, "java8"),
		newBinary(t, "api", "jar", binary.KindJar, "java11"),
	}

	none := &Criteria{}
	assert.False(t, none.HasFilters())
	assert.Len(t, none.Apply(bins), 3)

	jars := &Criteria{KindGlob: "jar"}
	assert.True(t, jars.HasFilters())
	got := jars.Apply(bins)
	require.Len(t, got, 2)
	assert.Equal(t, "core:jar", got[0].ID().String())
	assert.Equal(t, "api:jar", got[1].ID().String())
}
