//go:build !unix

package mappable

import "syscall"

func detachedAttr() *syscall.SysProcAttr { return nil }
