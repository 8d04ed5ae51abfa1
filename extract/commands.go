package extract

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// Support classifies an extension against the decompression command table.
type Support int

const (
	// Unknown means the extension is not in the table at all.
	Unknown Support = iota
	// Recognized means the format is known but has no handler configured.
	Recognized
	// Supported means a decompression command exists for the format.
	Supported
)

// commands maps a resolved extension to the shell command template used
// to unpack it. The {} placeholder receives the quoted target path. An
// empty template is a format we recognize but do not handle.
var commands = map[string]string{
	".7z":        "7z -mmt2 x {}",
	".Z":         "uncompress.real {}",
	".ace":       "",
	".ar":        "",
	".arj":       "",
	".arz":       "",
	".bz2":       "pbzip2 -d {}",
	".bz":        "pbzip2 -d {}",
	".bzip2":     "pbzip2 -d {}",
	".gz":        "unpigz -p4 {}",
	".gzip":      "unpigz -p4 {}",
	".lrz":       "",
	".lz":        "",
	".lz4":       "",
	".lzh":       "",
	".lzip":      "",
	".lzma":      "",
	".lzo":       "",
	".pea":       "",
	".rar":       "rar x {}",
	".tZ":        "",
	".tar":       "tar -xf {}",
	".tar.Z":     "tar --use-compress-program=uncompress.real -xf {}",
	".tar.bz":    "tar --use-compress-program=pbzip2 -xf {}",
	".tar.bz2":   "tar --use-compress-program=pbzip2 -xjf {}",
	".tar.bzip":  "",
	".tar.bzip2": "tar -xjf {}",
	".tar.gz":    "tar -xzf {}",
	".tar.lrz":   "",
	".tar.lz":    "",
	".tar.lz4":   "",
	".tar.lzip":  "tar --lzip -xf {}",
	".tar.lzma":  "tar --lzma -xf {}",
	".tar.lzo":   "",
	".tar.xz":    "tar --xz -xf {}",
	".tar.z":     "",
	".tar.zst":   "",
	".tar.zstd":  "tar --zstd -xf {}",
	".tarbz2":    "tar --use-compress-program=lbzip2 -xf {}",
	".taz":       "",
	".tbz":       "tar -xjf {}",
	".tbz2":      "tar -xjf {}",
	".tgz":       "tar -xzf {}",
	".tlrz":      "",
	".tlz":       "",
	".txz":       "",
	".tz":        "",
	".tzst":      "",
	".wmz":       "",
	".xz":        "xz --decompress {}",
	".zip":       "unzip {}",
	".zipx":      "",
	".zz":        "",
}

// Known reports whether ext appears in the command table at all,
// regardless of whether a handler is configured for it.
func Known(ext string) bool {
	_, ok := commands[ext]
	return ok
}

// SupportFor reports how ext relates to the command table.
func SupportFor(ext string) Support {
	tpl, ok := commands[ext]
	switch {
	case !ok:
		return Unknown
	case tpl == "":
		return Recognized
	default:
		return Supported
	}
}

// Command renders the decompression command for ext against target,
// with the target shell-quoted into the template. The boolean is false
// when the format is unknown or has no handler; the caller decides
// whether that is an error.
func Command(ext, target string) (string, bool) {
	tpl, ok := commands[ext]
	if !ok || tpl == "" {
		return "", false
	}
	return strings.ReplaceAll(tpl, "{}", shellquote.Join(target)), true
}
