package toolchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		wantVersion int
		wantErr     bool
		errMsg      string
	}{
		{name: "java prefix", input: "java8", wantVersion: 8},
		{name: "jvm prefix", input: "jvm17", wantVersion: 17},
		{name: "legacy form", input: "java1.6", wantVersion: 6},
		{name: "large version", input: "jvm99", wantVersion: 99},
		{name: "empty", input: "", wantErr: true, errMsg: "cannot be empty"},
		{name: "unknown prefix", input: "dotnet8", wantErr: true, errMsg: "must be 'java<version>'"},
		{name: "missing version", input: "java", wantErr: true, errMsg: "positive integer"},
		{name: "zero version", input: "jvm0", wantErr: true, errMsg: "positive integer"},
		{name: "legacy out of range", input: "java1.9", wantErr: true, errMsg: "unsupported legacy version"},
		{name: "garbage version", input: "javaX", wantErr: true, errMsg: "positive integer"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePlatform(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.input, p.Name)
			assert.Equal(t, tc.wantVersion, p.TargetVersion)
			assert.Equal(t, tc.input, p.String())
		})
	}
}
