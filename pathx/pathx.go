// Package pathx augments a filesystem path with derived metadata:
// compound extension resolution against the MIME-globs registry, MIME
// lookup, archive/video/audio/font classification and decompression
// command selection.
package pathx

import (
	"os"
	"path/filepath"
	"strings"

	"pathext/extract"
	"pathext/magic"
	"pathext/mimedb"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/afero"
)

// Path wraps a path string together with the MIME registry and the
// filesystem used to inspect it. The zero value is not usable; construct
// with New or NewWithRegistry.
type Path struct {
	name string
	reg  *mimedb.Registry
	fs   afero.Fs
}

// New wraps path using the process-wide MIME registry and the OS
// filesystem.
func New(path string) *Path {
	return NewWithRegistry(path, mimedb.Default(), afero.NewOsFs())
}

// NewWithRegistry wraps path with an explicit registry and filesystem,
// threading the registry through instead of relying on process state.
func NewWithRegistry(path string, reg *mimedb.Registry, fsys afero.Fs) *Path {
	return &Path{name: path, reg: reg, fs: fsys}
}

func (p *Path) String() string { return p.name }

// Join returns a new Path for the joined path, sharing registry and
// filesystem.
func (p *Path) Join(elem ...string) *Path {
	parts := append([]string{p.name}, elem...)
	return &Path{name: filepath.Join(parts...), reg: p.reg, fs: p.fs}
}

// Dirname returns the parent directory as a Path.
func (p *Path) Dirname() *Path {
	return &Path{name: filepath.Dir(p.name), reg: p.reg, fs: p.fs}
}

// Expandvars expands $VAR references in the path.
func (p *Path) Expandvars() *Path {
	return &Path{name: os.ExpandEnv(p.name), reg: p.reg, fs: p.fs}
}

// ExtName resolves the longest registered suffix chain from the name
// alone. The file need not exist; "data.tar.gz" resolves to ".tar.gz"
// when registered, never truncated to ".gz". "" means nothing matched.
func (p *Path) ExtName() string {
	return p.reg.Resolve(p.name)
}

// Ext resolves the extension like ExtName, but only for paths that are
// regular files once symlinks are followed. Anything else yields "".
func (p *Path) Ext() string {
	fi, err := p.fs.Stat(p.name)
	if err != nil || !fi.Mode().IsRegular() {
		return ""
	}
	return p.ExtName()
}

// Stem returns the base name with the resolved extension removed.
func (p *Path) Stem() string {
	base := filepath.Base(p.name)
	if ext := p.ExtName(); ext != "" {
		return strings.TrimSuffix(base, ext)
	}
	return base
}

// MIME returns the registered MIME types for the resolved extension as
// a tagged value. Kind is mimedb.None when no MIME info is available.
func (p *Path) MIME() mimedb.Type {
	return p.reg.Lookup(p.Ext())
}

// IsBinary reports whether the file content looks binary, judged over a
// bounded header read. Open and read errors propagate; they are never
// collapsed into a false classification.
func (p *Path) IsBinary() (bool, error) {
	fi, err := p.fs.Stat(p.name)
	if err != nil {
		return false, err
	}
	if !fi.Mode().IsRegular() {
		return false, nil
	}
	h, err := extract.GetFileHeader(p.name, magic.ReadLimit, p.fs)
	if err != nil {
		return false, err
	}
	return magic.Binary(h, magic.ReadLimit), nil
}

// IsCompressed reports whether the file is binary and its resolved
// extension is a recognized archive format, whether or not a
// decompression handler exists for it.
func (p *Path) IsCompressed() (bool, error) {
	bin, err := p.IsBinary()
	if err != nil || !bin {
		return false, err
	}
	return extract.Known(p.Ext()), nil
}

// IsVideo reports whether the file is binary video content.
func (p *Path) IsVideo() (bool, error) { return p.mimeClass("video") }

// IsAudio reports whether the file is binary audio content.
func (p *Path) IsAudio() (bool, error) { return p.mimeClass("audio") }

// IsFont reports whether the file is a binary font.
func (p *Path) IsFont() (bool, error) { return p.mimeClass("font") }

// mimeClass applies the shared classification rule: the file must be
// binary, and either the bare extension occurs inside a registered MIME
// value or the class word itself does.
func (p *Path) mimeClass(class string) (bool, error) {
	bin, err := p.IsBinary()
	if err != nil || !bin {
		return false, err
	}
	mt := p.MIME()
	if bare := strings.TrimPrefix(p.Ext(), "."); bare != "" && mt.Contains(bare) {
		return true, nil
	}
	return mt.Contains(class), nil
}

// Support reports how the resolved extension relates to the
// decompression command table.
func (p *Path) Support() extract.Support {
	return extract.SupportFor(p.Ext())
}

// DecompressionCommand returns the shell command that would unpack the
// file, with the path quoted in. False means unknown format or a
// recognized format with no handler.
func (p *Path) DecompressionCommand() (string, bool) {
	return extract.Command(p.Ext(), p.name)
}

// Escape returns the path quoted for safe shell interpolation.
func (p *Path) Escape() string {
	return shellquote.Join(p.name)
}
