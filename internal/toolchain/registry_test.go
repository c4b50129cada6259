package toolchain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPlatform(t *testing.T, name string) Platform {
	t.Helper()
	p, err := ParsePlatform(name)
	require.NoError(t, err)
	return p
}

func TestRegistry_Resolve(t *testing.T) {
	reg := NewRegistry()
	toolchainA := &JDK{ID: "ToolchainA", Version: 8}
	require.NoError(t, reg.Register(toolchainA))

	tc, err := reg.Resolve(mustPlatform(t, "jvm8"))
	require.NoError(t, err)
	assert.Same(t, toolchainA, tc)
}

func TestRegistry_ResolveNoMatch(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(&JDK{ID: "ToolchainA", Version: 8}))

	tc, err := reg.Resolve(mustPlatform(t, "jvm99"))
	assert.Nil(t, tc)
	require.Error(t, err)

	var resErr *ResolutionError
	require.True(t, errors.As(err, &resErr))
	assert.Equal(t, "jvm99", resErr.Platform.Name)
	assert.ErrorIs(t, err, ErrNoToolchain)
	assert.Contains(t, err.Error(), "'jvm99'")
}

func TestRegistry_ResolveEmpty(t *testing.T) {
	_, err := NewRegistry().Resolve(mustPlatform(t, "java8"))
	assert.ErrorIs(t, err, ErrNoToolchain)
}

func TestRegistry_FirstSupportingWins(t *testing.T) {
	reg := NewRegistry()
	jdk11 := &JDK{ID: "jdk11", Version: 11}
	jdk17 := &JDK{ID: "jdk17", Version: 17}
	require.NoError(t, reg.Register(jdk11))
	require.NoError(t, reg.Register(jdk17))

	tc, err := reg.Resolve(mustPlatform(t, "java8"))
	require.NoError(t, err)
	assert.Same(t, jdk11, tc)

	tc, err = reg.Resolve(mustPlatform(t, "java17"))
	require.NoError(t, err)
	assert.Same(t, jdk17, tc)

	// Same registry state, same answer
	again, err := reg.Resolve(mustPlatform(t, "java17"))
	require.NoError(t, err)
	assert.Same(t, tc, again)
}

func TestRegistry_Register(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(&JDK{ID: "jdk8", Version: 8}))

	err := reg.Register(&JDK{ID: "jdk8", Version: 11})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate toolchain")

	err = reg.Register(&JDK{Version: 11})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be empty")

	err = reg.Register(nil)
	assert.Error(t, err)

	names := []string{}
	for _, tc := range reg.Toolchains() {
		names = append(names, tc.Name())
	}
	assert.Equal(t, []string{"jdk8"}, names)
}
