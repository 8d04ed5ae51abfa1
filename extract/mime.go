package extract

import (
	"sync"

	"pathext/magic"
)

var mu = &sync.Mutex{}

type MIME struct {
	filetype string
	detector magic.Detector
}

func newMime(filetype string, detector magic.Detector) *MIME {
	return &MIME{filetype, detector}
}
