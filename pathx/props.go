package pathx

import (
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

// sizeUnits in ascending 1024-step order.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// Exists reports whether the path can be stat'ed.
func (p *Path) Exists() bool {
	_, err := p.fs.Stat(p.name)
	return err == nil
}

// IsFile reports whether the path is a regular file, following symlinks.
func (p *Path) IsFile() bool {
	fi, err := p.fs.Stat(p.name)
	return err == nil && fi.Mode().IsRegular()
}

// IsDir reports whether the path is a directory, following symlinks.
func (p *Path) IsDir() bool {
	fi, err := p.fs.Stat(p.name)
	return err == nil && fi.IsDir()
}

// IsSymlink reports whether the path itself is a symlink.
func (p *Path) IsSymlink() bool {
	fi, err := p.lstat()
	return err == nil && fi.Mode()&fs.ModeSymlink != 0
}

// Realpath resolves symlinks where the backing filesystem supports them.
func (p *Path) Realpath() *Path {
	name := p.name
	if _, ok := p.fs.(*afero.OsFs); ok {
		if resolved, err := filepath.EvalSymlinks(name); err == nil {
			name = resolved
		}
	}
	return &Path{name: name, reg: p.reg, fs: p.fs}
}

// Type names the stat file type: file, dir, link, socket, char, block,
// fifo or unknown. Symlinks are reported as links, not followed.
func (p *Path) Type() (string, error) {
	fi, err := p.lstat()
	if err != nil {
		return "", err
	}
	switch fi.Mode() & fs.ModeType {
	case 0:
		return "file", nil
	case fs.ModeDir:
		return "dir", nil
	case fs.ModeSymlink:
		return "link", nil
	case fs.ModeSocket:
		return "socket", nil
	case fs.ModeCharDevice | fs.ModeDevice:
		return "char", nil
	case fs.ModeDevice:
		return "block", nil
	case fs.ModeNamedPipe:
		return "fifo", nil
	}
	return "unknown", nil
}

// Size returns the file size in bytes, or the recursive total of a
// directory skipping symlinks. Unreadable paths surface a permission
// error rather than a zero size.
func (p *Path) Size() (int64, error) {
	if !p.IsReadable() {
		return 0, fmt.Errorf("access denied for %q: %w", p.name, fs.ErrPermission)
	}
	fi, err := p.fs.Stat(p.name)
	if err != nil {
		return 0, err
	}
	if fi.Mode().IsRegular() {
		return fi.Size(), nil
	}
	if !fi.IsDir() {
		return 0, fmt.Errorf("%q is neither a file nor a directory", p.name)
	}

	var total int64
	err = afero.Walk(p.fs, p.name, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	return total, err
}

// SizeAs formats the size scaled to a human-readable unit with the given
// precision, e.g. "1.500 KB". The unit argument is validated against the
// accepted unit names.
func (p *Path) SizeAs(unit string, precision int) (string, error) {
	unit = strings.ToUpper(strings.TrimSpace(unit))
	valid := false
	for _, u := range sizeUnits {
		if u == unit {
			valid = true
			break
		}
	}
	if !valid {
		return "", fmt.Errorf("invalid unit %q, accepted values are: %s", unit, strings.Join(sizeUnits, ", "))
	}

	size, err := p.Size()
	if err != nil {
		return "", err
	}
	v := float64(size)
	idx := 0
	for v >= 1024 && idx < len(sizeUnits)-1 {
		v /= 1024
		idx++
	}
	return fmt.Sprintf("%.*f %s", precision, v, sizeUnits[idx]), nil
}

// SizeHuman returns the size formatted in IEC units ("1.5 KiB").
func (p *Path) SizeHuman() (string, error) {
	size, err := p.Size()
	if err != nil {
		return "", err
	}
	return humanize.IBytes(uint64(size)), nil
}

// IsEmpty reports whether a file has zero size or a directory no
// entries.
func (p *Path) IsEmpty() (bool, error) {
	fi, err := p.fs.Stat(p.name)
	if err != nil {
		return false, err
	}
	if fi.Mode().IsRegular() {
		return fi.Size() == 0, nil
	}
	if fi.IsDir() {
		entries, err := afero.ReadDir(p.fs, p.name)
		if err != nil {
			return false, err
		}
		return len(entries) == 0, nil
	}
	return false, fmt.Errorf("%q is neither a file nor a directory", p.name)
}

// IsReadable reports whether the current user may read the path, with
// directories additionally requiring search permission.
func (p *Path) IsReadable() bool {
	fi, err := p.fs.Stat(p.name)
	if err != nil {
		return false
	}
	if fi.IsDir() {
		return p.access(unix.R_OK | unix.X_OK)
	}
	return p.access(unix.R_OK)
}

// IsWritable reports whether the current user may modify the path.
func (p *Path) IsWritable() bool {
	fi, err := p.fs.Stat(p.name)
	if err != nil {
		return false
	}
	if fi.IsDir() {
		return p.access(unix.R_OK | unix.W_OK | unix.X_OK)
	}
	return p.access(unix.R_OK | unix.W_OK)
}

// IsExecutable reports whether the path is a regular file the current
// user may execute.
func (p *Path) IsExecutable() bool {
	return p.IsFile() && p.access(unix.R_OK|unix.X_OK)
}

// access runs access(2) on the real filesystem. In-memory backends have
// no uid model, so the owner permission bits stand in.
func (p *Path) access(mode uint32) bool {
	if _, ok := p.fs.(*afero.OsFs); ok {
		return unix.Access(p.name, mode) == nil
	}
	fi, err := p.fs.Stat(p.name)
	if err != nil {
		return false
	}
	owner := uint32(fi.Mode().Perm() >> 6)
	return owner&mode == mode
}

// Permissions returns the permission bits as the usual three octal
// digits, "644" style.
func (p *Path) Permissions() (string, error) {
	fi, err := p.fs.Stat(p.name)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%03o", fi.Mode().Perm()), nil
}

// PermissionsOctal returns the permission digits as a number, 644 for
// rw-r--r--.
func (p *Path) PermissionsOctal() (int, error) {
	s, err := p.Permissions()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}

// OwnerID returns the numeric uid of the file owner.
func (p *Path) OwnerID() (int, error) {
	st, err := p.sysStat()
	if err != nil {
		return 0, err
	}
	return int(st.Uid), nil
}

// Owner returns the user name of the file owner.
func (p *Path) Owner() (string, error) {
	uid, err := p.OwnerID()
	if err != nil {
		return "", err
	}
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// GroupID returns the numeric gid of the file group.
func (p *Path) GroupID() (int, error) {
	st, err := p.sysStat()
	if err != nil {
		return 0, err
	}
	return int(st.Gid), nil
}

// Group returns the group name of the file group.
func (p *Path) Group() (string, error) {
	gid, err := p.GroupID()
	if err != nil {
		return "", err
	}
	g, err := user.LookupGroupId(strconv.Itoa(gid))
	if err != nil {
		return "", err
	}
	return g.Name, nil
}

// Modified returns the modification time.
func (p *Path) Modified() (time.Time, error) {
	fi, err := p.fs.Stat(p.name)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

// Accessed returns the last access time, falling back to the
// modification time on filesystems without atime.
func (p *Path) Accessed() (time.Time, error) {
	st, err := p.sysStat()
	if err == nil {
		return time.Unix(st.Atim.Sec, st.Atim.Nsec), nil
	}
	return p.Modified()
}

// Created returns the inode change time, the closest stat offers to a
// creation date, falling back to the modification time.
func (p *Path) Created() (time.Time, error) {
	st, err := p.sysStat()
	if err == nil {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec), nil
	}
	return p.Modified()
}

func (p *Path) sysStat() (*syscall.Stat_t, error) {
	fi, err := p.fs.Stat(p.name)
	if err != nil {
		return nil, err
	}
	st, ok := fi.Sys().(*syscall.Stat_t)
	if !ok {
		return nil, fmt.Errorf("no system stat for %q", p.name)
	}
	return st, nil
}

func (p *Path) lstat() (os.FileInfo, error) {
	if l, ok := p.fs.(afero.Lstater); ok {
		fi, _, err := l.LstatIfPossible(p.name)
		return fi, err
	}
	return p.fs.Stat(p.name)
}
