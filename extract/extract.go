package extract

import (
	"archive/zip"
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"

	"pathext/bars"
	"pathext/magic"

	"github.com/klauspost/pgzip"
	"github.com/spf13/afero"
	"github.com/vbauerster/mpb/v7"
)

var readLimit uint32 = magic.ReadLimit

type Extractor interface {
	Extract(filename, dest string, p *mpb.Progress, fsys afero.Fs) error
}

type Gz struct {
	CompressionLevel int
}

type Bz2 struct{}

type Zip struct{}

// Extract unpacks file into destDir with whichever native reader claims
// its header. Formats without a native reader come back as an error; the
// caller may fall back to the shell command table.
func Extract(file, destDir string, p *mpb.Progress, fsys afero.Fs) error {
	u, err := GetFormat(file, fsys)
	if err != nil {
		return err
	}

	err = u.Extract(file, destDir, p, fsys)
	if err != nil {
		return err
	}
	return nil
}

func (gz *Gz) CheckFormat(filename string, fsys afero.Fs) error {
	return checkMagic(filename, fsys, newMime("Gzip", magic.Gz))
}

func (bz *Bz2) CheckFormat(filename string, fsys afero.Fs) error {
	return checkMagic(filename, fsys, newMime("Bzip2", magic.Bz2))
}

func (z *Zip) CheckFormat(filename string, fsys afero.Fs) error {
	return checkMagic(filename, fsys, newMime("Zip", magic.Zip))
}

func checkMagic(filename string, fsys afero.Fs, m *MIME) error {
	l := atomic.LoadUint32(&readLimit)
	h, err := GetFileHeader(filename, l, fsys)
	if err != nil {
		return fmt.Errorf("problem looking at %s", filename)
	}
	mu.Lock()
	defer mu.Unlock()

	if !m.detector(h, l) {
		return fmt.Errorf("%s is not a %s file", filename, m.filetype)
	}
	return nil
}

func (gz *Gz) Extract(filename, destination string, p *mpb.Progress, fsys afero.Fs) error {
	f, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	fname, err := DetermineFilename(filename, ".gz", "gzip")
	if err != nil {
		return err
	}
	fileout := path.Join(destination, fname)

	b := addBar(p, filepath.Base(filename))
	out, err := fsys.Create(fileout)
	if err != nil {
		abort(b)
		return err
	}
	defer out.Close()

	r, err := pgzip.NewReader(f)
	if err != nil {
		abort(b)
		return err
	}
	defer r.Close()

	_, err = io.Copy(out, r)
	if err != nil {
		abort(b)
		return err
	}
	finish(b)

	return nil
}

func (bz *Bz2) Extract(filename, destination string, p *mpb.Progress, fsys afero.Fs) error {
	f, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	fname, err := DetermineFilename(filename, ".bz2", ".bz", "bzip2")
	if err != nil {
		return err
	}
	fileout := path.Join(destination, fname)

	b := addBar(p, filepath.Base(filename))
	out, err := fsys.Create(fileout)
	if err != nil {
		abort(b)
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, bzip2.NewReader(f))
	if err != nil {
		abort(b)
		return err
	}
	finish(b)

	return nil
}

func (z *Zip) Extract(filename, destination string, p *mpb.Progress, fsys afero.Fs) error {
	f, err := fsys.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	fi, err := fsys.Stat(filename)
	if err != nil {
		return err
	}

	zr, err := zip.NewReader(f, fi.Size())
	if err != nil {
		return err
	}

	b := addBar(p, filepath.Base(filename))
	for _, zf := range zr.File {
		if err := unzipEntry(zf, destination, fsys); err != nil {
			abort(b)
			return err
		}
	}
	finish(b)

	return nil
}

func unzipEntry(zf *zip.File, destination string, fsys afero.Fs) error {
	fileout := path.Join(destination, zf.Name)
	if !strings.HasPrefix(path.Clean(fileout)+"/", path.Clean(destination)+"/") {
		return fmt.Errorf("entry %s escapes %s", zf.Name, destination)
	}
	if zf.FileInfo().IsDir() {
		return fsys.MkdirAll(fileout, 0755)
	}
	if err := fsys.MkdirAll(path.Dir(fileout), 0755); err != nil {
		return err
	}

	rc, err := zf.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := fsys.Create(fileout)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}

// DetermineFilename returns the output name for a single-file archive,
// checking the name actually carries one of the expected suffixes.
func DetermineFilename(f string, suffixes ...string) (filename string, err error) {
	lower := strings.ToLower(f)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			base := filepath.Base(f)
			return strings.TrimSuffix(base, filepath.Ext(base)), nil
		}
	}
	err = fmt.Errorf("%s: filename does not look like %s", f, suffixes[0])
	return
}

func addBar(p *mpb.Progress, file string) *mpb.Bar {
	if p == nil {
		return nil
	}
	return bars.AddNewExtractBar(p, file)
}

func finish(b *mpb.Bar) {
	if b != nil {
		b.SetTotal(1, true)
	}
}

func abort(b *mpb.Bar) {
	if b != nil {
		b.Abort(true)
	}
}

func NewGz() *Gz {
	return &Gz{
		CompressionLevel: gzip.DefaultCompression,
	}
}
