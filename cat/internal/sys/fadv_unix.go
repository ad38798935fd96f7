//go:build linux || freebsd
// +build linux freebsd

package sys

import "golang.org/x/sys/unix"

// Fadvise tells the kernel fd will be read sequentially.
func Fadvise(fd int) error {
	return unix.Fadvise(fd, 0, 0, unix.FADV_SEQUENTIAL)
}
