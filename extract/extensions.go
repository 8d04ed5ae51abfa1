package extract

import (
	"fmt"

	"github.com/spf13/afero"
)

type Format interface {
	CheckFormat(filename string, fsys afero.Fs) error
}

// formats lists the archive formats with a native reader. This is by no
// means extensive, but covers the single-file formats we unpack without
// shelling out. Anything else goes through the command table.
var formats = []Format{
	&Gz{},
	&Bz2{},
	&Zip{},
}

func GetFormat(filename string, fsys afero.Fs) (Extractor, error) {
	f, err := ByFormat(filename, fsys)
	if err != nil {
		return nil, err
	}

	return f, nil
}

func ByFormat(filename string, fsys afero.Fs) (Extractor, error) {
	var ext interface{}
	for _, c := range formats {
		if err := c.CheckFormat(filename, fsys); err == nil {
			ext = c
			break
		}
	}

	switch ext.(type) {
	case *Gz:
		return NewGz(), nil
	case *Bz2:
		return &Bz2{}, nil
	case *Zip:
		return &Zip{}, nil
	}
	return nil, fmt.Errorf("no native reader for: %s", filename)
}
