package codegen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regexio/regexio/pkg/regexio"
)

func TestFileRender(t *testing.T) {
	f := NewFile("patterns")
	require.NoError(t, f.Add("word", regexio.New().OneOrMore(regexio.New().AnyLetter())))
	require.NoError(t, f.Add("Digits", regexio.New().OneOrMore(regexio.New().AnyDigit())))

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf))
	src := buf.String()

	assert.Contains(t, src, "Code generated by regexio. DO NOT EDIT.")
	assert.Contains(t, src, "package patterns")

	// Lowercase names are exported in the generated code.
	assert.Contains(t, src, `WordPattern = "(\\w)+"`)
	assert.Contains(t, src, `regexp.MustCompile("\\A(?:(\\w)+)\\z")`)
	assert.Contains(t, src, "func WordMatch(input string) bool")

	assert.Contains(t, src, `DigitsPattern = "(\\d)+"`)
	assert.Contains(t, src, "func DigitsMatch(input string) bool")
}

func TestAddRejectsInvalidName(t *testing.T) {
	f := NewFile("patterns")

	for _, name := range []string{"", "9lives", "with space", "dash-ed"} {
		err := f.Add(name, regexio.New().AnyDigit())
		assert.Error(t, err, "name %q", name)
	}
}

func TestAddPropagatesBuilderError(t *testing.T) {
	f := NewFile("patterns")

	err := f.Add("Broken", regexio.New().Repeat(regexio.New().AnyDigit(), 0))
	require.Error(t, err)

	var contractErr *regexio.ContractError
	assert.ErrorAs(t, err, &contractErr)
}

func TestSaveWritesFile(t *testing.T) {
	f := NewFile("patterns")
	require.NoError(t, f.Add("Sample", regexio.New().AnyCharacter()))

	path := filepath.Join(t.TempDir(), "patterns_gen.go")
	require.NoError(t, f.Save(path))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
