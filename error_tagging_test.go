package tasklog

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSinkTaggedError_NilErrReturnsNil(t *testing.T) {
	require.NoError(t, newSinkTaggedError(nil, 0, "x"))
}

func TestSinkTaggedError_UnwrapAndExtract(t *testing.T) {
	base := errors.New("open failed")
	tagged := newSinkTaggedError(base, 2, "terminal")

	require.Equal(t, "open failed", tagged.Error())
	require.ErrorIs(t, tagged, base)

	idx, ok := ExtractSinkIndex(tagged)
	require.True(t, ok)
	require.Equal(t, 2, idx)

	name, ok := ExtractSinkName(tagged)
	require.True(t, ok)
	require.Equal(t, "terminal", name)
}

func TestExtract_FalseForPlainError(t *testing.T) {
	_, ok := ExtractSinkIndex(errors.New("plain"))
	require.False(t, ok)

	_, ok = ExtractSinkName(errors.New("plain"))
	require.False(t, ok)
}

func TestSinkTaggedError_FormatVerbs(t *testing.T) {
	tagged := newSinkTaggedError(errors.New("fail"), 1, "file:/tmp/x")

	require.Equal(t, "fail", fmt.Sprintf("%s", tagged))
	require.Equal(t, `"fail"`, fmt.Sprintf("%q", tagged))
	require.Contains(t, fmt.Sprintf("%+v", tagged), "sink(index=1,name=file:/tmp/x)")
}
