package mimedb

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

// DefaultGlobsPath is where the shared-mime-info database keeps its
// extension globs on most Linux systems.
const DefaultGlobsPath = "/usr/share/mime/globs"

// GlobsEnv overrides the globs database location for the process-wide
// registry.
const GlobsEnv = "PATHEXT_MIME_GLOBS"

// Registry holds the bidirectional extension/MIME tables parsed from a
// MIME-globs database. The tables are not written to after Load returns,
// so a Registry may be shared freely between goroutines.
type Registry struct {
	// ExtToMIME maps a dot-prefixed extension to its MIME types in
	// source order, deduplicated per extension.
	ExtToMIME map[string][]string
	// MIMEToExt is the inverse. Duplicate extensions are kept if the
	// source repeats them.
	MIMEToExt map[string][]string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		ExtToMIME: make(map[string][]string),
		MIMEToExt: make(map[string][]string),
	}
}

// Load parses a MIME-globs database, one `mime/type:*.ext` entry per
// line. Blank lines, comments and lines that do not split into two
// non-empty fields on the first colon are skipped. A missing file is not
// an error; it yields an empty registry and classification degrades to
// "no MIME info".
func Load(fsys afero.Fs, path string) (*Registry, error) {
	r := New()

	f, err := fsys.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		mime, glob, ok := strings.Cut(ln, ":")
		if !ok {
			continue
		}
		ext := strings.Trim(glob, "*")
		if mime == "" || ext == "" {
			continue
		}
		r.add(mime, ext)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) add(mime, ext string) {
	known := false
	for _, m := range r.ExtToMIME[ext] {
		if m == mime {
			known = true
			break
		}
	}
	if !known {
		r.ExtToMIME[ext] = append(r.ExtToMIME[ext], mime)
	}
	r.MIMEToExt[mime] = append(r.MIMEToExt[mime], ext)
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the process-wide registry, loading it from the system
// globs database (or GlobsEnv if set) exactly once. Concurrent callers
// all observe the same loaded value.
func Default() *Registry {
	defaultOnce.Do(func() {
		path := os.Getenv(GlobsEnv)
		if path == "" {
			path = DefaultGlobsPath
		}
		r, err := Load(afero.NewOsFs(), path)
		if err != nil {
			r = New()
		}
		defaultReg = r
	})
	return defaultReg
}

// Resolve returns the longest registered suffix chain of name, e.g.
// ".tar.gz" for "data.tar.gz" when both ".tar.gz" and ".gz" are
// registered. The empty string means no chain matched.
func (r *Registry) Resolve(name string) string {
	sufs := suffixes(name)
	for i := range sufs {
		chain := strings.Join(sufs[i:], "")
		if _, ok := r.ExtToMIME[chain]; ok {
			return chain
		}
	}
	return ""
}

// suffixes splits the base name into its dot-suffixes:
// "archive.tar.gz" -> [".tar", ".gz"]. A leading dot is part of the name
// (".bashrc" has no suffixes), a trailing dot yields nothing, and a
// doubled dot keeps a bare "." segment so the chains after it still
// resolve ("a..gz" -> [".", ".gz"]).
func suffixes(name string) []string {
	base := name
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if strings.HasSuffix(base, ".") {
		return nil
	}
	base = strings.TrimLeft(base, ".")
	parts := strings.Split(base, ".")
	if len(parts) < 2 {
		return nil
	}
	out := make([]string, 0, len(parts)-1)
	for _, p := range parts[1:] {
		out = append(out, "."+p)
	}
	return out
}
