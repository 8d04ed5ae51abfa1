package pathx

import (
	"archive/zip"
	"compress/bzip2"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"

	"pathext/magic"

	"github.com/klauspost/pgzip"
	"github.com/spf13/afero"
)

// Content returns the file body. Text files come back as-is. For
// single-file archives with a native reader (gz, bz2, zip) the
// decompressed payload is returned when it sniffs as text; any other
// binary content is returned raw.
func (p *Path) Content() ([]byte, error) {
	if !p.IsReadable() {
		return nil, fmt.Errorf("access denied for %q: %w", p.name, fs.ErrPermission)
	}
	bin, err := p.IsBinary()
	if err != nil {
		return nil, err
	}
	if !bin {
		return afero.ReadFile(p.fs, p.name)
	}

	var payload []byte
	switch p.Ext() {
	case ".gz", ".gzip", ".tgz":
		payload, err = p.readGz()
	case ".bz", ".bz2", ".bzip2":
		payload, err = p.readBz2()
	case ".zip":
		payload, err = p.readZip()
	default:
		return afero.ReadFile(p.fs, p.name)
	}
	if err != nil {
		return nil, err
	}
	if !magic.Binary(payload, magic.ReadLimit) {
		return payload, nil
	}
	return afero.ReadFile(p.fs, p.name)
}

func (p *Path) readGz() ([]byte, error) {
	f, err := p.fs.Open(p.name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r, err := pgzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (p *Path) readBz2() ([]byte, error) {
	f, err := p.fs.Open(p.name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(bzip2.NewReader(f))
}

// readZip returns the first regular member of the archive.
func (p *Path) readZip() ([]byte, error) {
	f, err := p.fs.Open(p.name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	fi, err := p.fs.Stat(p.name)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(f, fi.Size())
	if err != nil {
		return nil, err
	}
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%q has no file entries", p.name)
}

// Lines splits the text content on newlines. Binary files yield no
// lines and no error; unreadable files surface their access error.
func (p *Path) Lines() ([]string, error) {
	bin, err := p.IsBinary()
	if err != nil {
		return nil, err
	}
	if bin {
		return nil, nil
	}
	data, err := afero.ReadFile(p.fs, p.name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n"), nil
}

// ContentInfo counts lines, words and characters of a text file the way
// wc does, with characters counted over words only. Binary or empty
// files are an error.
func (p *Path) ContentInfo() (lines, words, chars int, err error) {
	ls, err := p.Lines()
	if err != nil {
		return 0, 0, 0, err
	}
	if len(ls) == 0 {
		return 0, 0, 0, fmt.Errorf("file %q is binary or empty", p.name)
	}
	lines = len(ls)
	for _, ln := range ls {
		for _, w := range strings.Fields(ln) {
			words++
			chars += utf8.RuneCountInString(w)
		}
	}
	return lines, words, chars, nil
}

// NumLines counts the lines of a text file.
func (p *Path) NumLines() (int, error) {
	n, _, _, err := p.ContentInfo()
	return n, err
}

// NumWords counts the words of a text file.
func (p *Path) NumWords() (int, error) {
	_, n, _, err := p.ContentInfo()
	return n, err
}

// NumChars counts the word characters of a text file.
func (p *Path) NumChars() (int, error) {
	_, _, n, err := p.ContentInfo()
	return n, err
}
