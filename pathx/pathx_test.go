package pathx

import (
	"testing"

	"pathext/extract"
	"pathext/mimedb"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGlobs = `text/plain:*.txt
application/gzip:*.gz
application/x-compressed-tar:*.tar.gz
application/x-bzip-compressed-tar:*.tar.bz2
application/zip:*.zip
application/x-rar:*.rar
video/mp4:*.mp4
audio/mpeg:*.mp3
font/ttf:*.ttf
`

// binaryHeader is enough NULs to trip the binary sniffer.
var binaryHeader = []byte{0x00, 0x01, 0x02, 0x03, 0xff, 0xfe}

func testEnv(t *testing.T) (*mimedb.Registry, afero.Fs) {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/mime/globs", []byte(sampleGlobs), 0644))
	reg, err := mimedb.Load(fsys, "/mime/globs")
	require.NoError(t, err)
	return reg, fsys
}

func newPath(t *testing.T, name string, content []byte) *Path {
	t.Helper()
	reg, fsys := testEnv(t)
	if content != nil {
		require.NoError(t, afero.WriteFile(fsys, name, content, 0644))
	}
	return NewWithRegistry(name, reg, fsys)
}

func TestExtCompoundSuffix(t *testing.T) {
	p := newPath(t, "/data/archive.tar.gz", binaryHeader)
	assert.Equal(t, ".tar.gz", p.Ext())
}

func TestExtPlainSuffix(t *testing.T) {
	p := newPath(t, "/data/notes.txt", []byte("hello"))
	assert.Equal(t, ".txt", p.Ext())
}

func TestExtUnregistered(t *testing.T) {
	p := newPath(t, "/data/file.xyz123", []byte("hello"))
	assert.Equal(t, "", p.Ext())
}

func TestExtNoSuffix(t *testing.T) {
	p := newPath(t, "/data/README", []byte("hello"))
	assert.Equal(t, "", p.Ext())
}

func TestExtRequiresRegularFile(t *testing.T) {
	reg, fsys := testEnv(t)
	require.NoError(t, fsys.MkdirAll("/data/dir.tar.gz", 0755))

	p := NewWithRegistry("/data/dir.tar.gz", reg, fsys)
	assert.Equal(t, "", p.Ext())
	// Name-only resolution ignores the filesystem.
	assert.Equal(t, ".tar.gz", p.ExtName())
}

func TestExtNameWithoutFile(t *testing.T) {
	reg, fsys := testEnv(t)
	p := NewWithRegistry("/nowhere/data.tar.bz2", reg, fsys)
	assert.Equal(t, ".tar.bz2", p.ExtName())
	assert.Equal(t, "", p.Ext())
}

func TestStem(t *testing.T) {
	p := newPath(t, "/data/archive.tar.gz", binaryHeader)
	assert.Equal(t, "archive", p.Stem())

	p = newPath(t, "/data/README", []byte("x"))
	assert.Equal(t, "README", p.Stem())
}

func TestMIME(t *testing.T) {
	p := newPath(t, "/data/notes.txt", []byte("hello"))
	mt := p.MIME()
	assert.Equal(t, mimedb.Single, mt.Kind)
	assert.Equal(t, "text/plain", mt.First())

	p = newPath(t, "/data/file.xyz123", []byte("hello"))
	assert.Equal(t, mimedb.None, p.MIME().Kind)
}

func TestIsBinary(t *testing.T) {
	p := newPath(t, "/data/blob.bin", binaryHeader)
	bin, err := p.IsBinary()
	require.NoError(t, err)
	assert.True(t, bin)

	p = newPath(t, "/data/notes.txt", []byte("plain text\n"))
	bin, err = p.IsBinary()
	require.NoError(t, err)
	assert.False(t, bin)
}

func TestIsBinaryPropagatesAccessError(t *testing.T) {
	reg, fsys := testEnv(t)
	p := NewWithRegistry("/data/missing.zip", reg, fsys)

	_, err := p.IsBinary()
	assert.Error(t, err)
}

func TestIsCompressed(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		want    bool
	}{
		{"/data/a.zip", binaryHeader, true},
		{"/data/a.tar.gz", binaryHeader, true},
		{"/data/a.rar", binaryHeader, true},
		// Same extension, text content: not compressed.
		{"/data/b.zip", []byte("actually text"), false},
		{"/data/plain.txt", []byte("text"), false},
	}
	for _, tt := range tests {
		p := newPath(t, tt.name, tt.content)
		got, err := p.IsCompressed()
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestIsCompressedPropagatesAccessError(t *testing.T) {
	reg, fsys := testEnv(t)
	p := NewWithRegistry("/data/gone.zip", reg, fsys)

	_, err := p.IsCompressed()
	assert.Error(t, err)
}

func TestClassificationPredicates(t *testing.T) {
	tests := []struct {
		name    string
		content []byte
		check   func(*Path) (bool, error)
		want    bool
	}{
		{"/data/movie.mp4", binaryHeader, (*Path).IsVideo, true},
		{"/data/song.mp3", binaryHeader, (*Path).IsAudio, true},
		{"/data/face.ttf", binaryHeader, (*Path).IsFont, true},
		// The bare extension matching inside the MIME value makes an
		// .mp4 count as audio too ("mp4" occurs in "video/mp4").
		{"/data/movie.mp4", binaryHeader, (*Path).IsAudio, true},
		{"/data/song.mp3", binaryHeader, (*Path).IsVideo, false},
		// Text content fails the binary precondition.
		{"/data/movie2.mp4", []byte("not a movie"), (*Path).IsVideo, false},
		// No MIME info at all.
		{"/data/blob.xyz123", binaryHeader, (*Path).IsVideo, false},
	}
	for _, tt := range tests {
		p := newPath(t, tt.name, tt.content)
		got, err := tt.check(p)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestSupport(t *testing.T) {
	p := newPath(t, "/data/a.tar.gz", binaryHeader)
	assert.Equal(t, extract.Supported, p.Support())

	p = newPath(t, "/data/plain.txt", []byte("x"))
	assert.Equal(t, extract.Unknown, p.Support())
}

func TestDecompressionCommand(t *testing.T) {
	p := newPath(t, "/data/a.gz", binaryHeader)
	cmd, ok := p.DecompressionCommand()
	assert.True(t, ok)
	assert.Contains(t, cmd, "/data/a.gz")

	p = newPath(t, "/data/file.xyz123", binaryHeader)
	_, ok = p.DecompressionCommand()
	assert.False(t, ok)
}

func TestEscape(t *testing.T) {
	reg, fsys := testEnv(t)
	p := NewWithRegistry("/data/my file.txt", reg, fsys)
	assert.Equal(t, "'/data/my file.txt'", p.Escape())

	p = NewWithRegistry("/data/plain.txt", reg, fsys)
	assert.Equal(t, "/data/plain.txt", p.Escape())
}

func TestJoinAndDirname(t *testing.T) {
	reg, fsys := testEnv(t)
	p := NewWithRegistry("/data", reg, fsys)

	child := p.Join("sub", "file.txt")
	assert.Equal(t, "/data/sub/file.txt", child.String())
	assert.Equal(t, "/data/sub", child.Dirname().String())
}
