package mimedb

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGlobs = `# This file was automatically generated
text/plain:*.txt
application/gzip:*.gz
application/x-compressed-tar:*.tar.gz
application/x-bzip-compressed-tar:*.tar.bz2
video/mp4:*.mp4
audio/mpeg:*.mp3
font/ttf:*.ttf

# duplicate entry
text/plain:*.txt
text/x-readme:*.txt
malformed line without colon
:*.empty
application/empty-glob:
`

func loadSample(t *testing.T) *Registry {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/usr/share/mime/globs", []byte(sampleGlobs), 0644))
	r, err := Load(fsys, "/usr/share/mime/globs")
	require.NoError(t, err)
	return r
}

func TestLoadRoundTrip(t *testing.T) {
	r := loadSample(t)

	assert.Contains(t, r.ExtToMIME, ".txt")
	assert.Contains(t, r.ExtToMIME[".txt"], "text/plain")
	assert.Contains(t, r.MIMEToExt, "text/plain")
	assert.Contains(t, r.MIMEToExt["text/plain"], ".txt")
}

func TestLoadDeduplicatesPerExtension(t *testing.T) {
	r := loadSample(t)

	// text/plain appears twice in the source but only once per extension.
	assert.Equal(t, []string{"text/plain", "text/x-readme"}, r.ExtToMIME[".txt"])
	// The inverse table keeps the source repetition.
	assert.Equal(t, []string{".txt", ".txt"}, r.MIMEToExt["text/plain"])
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	r := loadSample(t)

	assert.NotContains(t, r.ExtToMIME, ".empty")
	for ext := range r.ExtToMIME {
		assert.NotEmpty(t, ext)
	}
	assert.NotContains(t, r.MIMEToExt, "application/empty-glob")
}

func TestLoadMissingFileIsEmptyRegistry(t *testing.T) {
	r, err := Load(afero.NewMemMapFs(), "/no/such/globs")
	require.NoError(t, err)
	assert.Empty(t, r.ExtToMIME)
	assert.Empty(t, r.MIMEToExt)
}

func TestLoadIdempotent(t *testing.T) {
	a := loadSample(t)
	b := loadSample(t)

	assert.Equal(t, a.ExtToMIME, b.ExtToMIME)
	assert.Equal(t, a.MIMEToExt, b.MIMEToExt)
}

func TestDefaultLoadsOnce(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestResolve(t *testing.T) {
	r := loadSample(t)

	tests := []struct {
		name string
		want string
	}{
		{"data.tar.gz", ".tar.gz"},
		{"backup.tar.bz2", ".tar.bz2"},
		{"data.gz", ".gz"},
		{"/some/dir/archive.tar.gz", ".tar.gz"},
		{"notes.txt", ".txt"},
		{"file.xyz123", ""},
		{"README", ""},
		{".bashrc", ""},
		{"nested.name.txt", ".txt"},
		// A doubled dot still resolves the chains after it.
		{"a..gz", ".gz"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Resolve(tt.name), tt.name)
	}
}

func TestResolvePrefersLongestChain(t *testing.T) {
	r := loadSample(t)

	// Both .gz and .tar.gz are registered; the compound form wins.
	assert.Equal(t, ".tar.gz", r.Resolve("data.tar.gz"))
}

func TestLookup(t *testing.T) {
	r := loadSample(t)

	single := r.Lookup(".gz")
	assert.Equal(t, Single, single.Kind)
	assert.Equal(t, "application/gzip", single.First())

	many := r.Lookup(".txt")
	assert.Equal(t, Many, many.Kind)
	assert.Len(t, many.Values, 2)

	none := r.Lookup(".nope")
	assert.Equal(t, None, none.Kind)
	assert.Empty(t, none.Values)
	assert.Equal(t, "", none.First())
}

func TestTypeContains(t *testing.T) {
	r := loadSample(t)

	mt := r.Lookup(".mp4")
	assert.True(t, mt.Contains("video"))
	assert.True(t, mt.Contains("mp4"))
	assert.False(t, mt.Contains("audio"))
	assert.False(t, r.Lookup(".nope").Contains("video"))
}

func TestSuffixes(t *testing.T) {
	tests := []struct {
		name string
		want []string
	}{
		{"archive.tar.gz", []string{".tar", ".gz"}},
		{"plain.txt", []string{".txt"}},
		{"README", nil},
		{".bashrc", nil},
		{"trailing.", nil},
		{"a..gz", []string{".", ".gz"}},
		{"a/b/c.tar.bz2", []string{".tar", ".bz2"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, suffixes(tt.name), tt.name)
	}
}
