// SPDX-License-Identifier: GPL-2.0-or-later

// Package filesystem provides read access to the asset directory through a
// vfs namespace, so assets resolve the same way regardless of the working
// directory.
package filesystem

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/tools/godoc/vfs"
)

var (
	baseDir string
	ns      vfs.NameSpace
	bound   bool
	mutex   sync.RWMutex
)

func BaseDir() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return baseDir
}

// UseBaseDir mounts dir as the root of the asset namespace.
func UseBaseDir(dir string) {
	mutex.Lock()
	defer mutex.Unlock()
	baseDir = dir
	ns = vfs.NameSpace{}
	ns.Bind("/", vfs.OS(dir), "/", vfs.BindReplace)
	bound = true
}

func Open(name string) (io.ReadSeekCloser, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	if !bound {
		return nil, fmt.Errorf("filesystem: no base directory set")
	}
	if len(name) == 0 || name[0] != '/' {
		name = "/" + name
	}
	return ns.Open(name)
}

// ReadFile reads a whole file from the namespace.
func ReadFile(name string) ([]byte, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
