//go:build unix

package gallery

import "golang.org/x/sys/unix"

func canWrite(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}

func canRead(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
