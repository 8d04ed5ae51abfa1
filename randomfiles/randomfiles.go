package randomfiles

import (
	crand "crypto/rand"
	"io"
	"math/rand"
	"path"

	"github.com/spf13/afero"
)

type Options struct {
	FileSize int32
	Depth    int32
	Files    int32
	Width    int32

	// Ext is appended to every generated file name when set.
	Ext string
	// Binary fills files from the random source; otherwise a plain
	// text filler is repeated.
	Binary bool
}

var FilenameSize = 16
var alphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789-_")

var textFiller = []byte("the quick brown fox jumps over the lazy dog\n")

func WriteRandomFiles(root string, depth int32, opts *Options, fsys afero.Fs) error {
	numFiles := opts.Files

	for i := int32(0); i < numFiles; i++ {
		if e := WriteRandomFile(root, opts, fsys); e != nil {
			return e
		}
	}

	if depth+1 <= opts.Depth {
		numDirs := opts.Width
		for i := int32(0); i < numDirs; i++ {
			if e := WriteRandomDir(root, depth+1, opts, fsys); e != nil {
				return e
			}
		}
	}

	return nil
}

func WriteRandomFile(root string, opts *Options, fsys afero.Fs) error {
	filesize := int64(opts.FileSize)
	n := rand.Intn(FilenameSize-4) + 4
	name := RandomFilename(n) + opts.Ext
	filepath := path.Join(root, name)
	f, e := fsys.Create(filepath)
	if e != nil {
		return e
	}
	if opts.Binary {
		if _, e := io.CopyN(f, crand.Reader, filesize); e != nil {
			return e
		}
	} else {
		var written int64
		for written < filesize {
			n, e := f.Write(textFiller)
			if e != nil {
				return e
			}
			written += int64(n)
		}
	}
	return f.Close()
}

func RandomFilename(length int) string {
	b := make([]rune, length)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

func WriteRandomDir(root string, depth int32, opts *Options, fsys afero.Fs) error {
	if depth > opts.Depth {
		return nil
	}
	n := rand.Intn(FilenameSize-4) + 4
	name := RandomFilename(n)
	root = path.Join(root, name)
	if e := fsys.MkdirAll(root, 0755); e != nil {
		return e
	}

	return WriteRandomFiles(root, depth, opts, fsys)
}
