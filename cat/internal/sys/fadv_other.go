//go:build !linux && !freebsd
// +build !linux,!freebsd

package sys

func Fadvise(fd int) error { return nil }
