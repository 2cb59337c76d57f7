package testutil

import (
	"fmt"
	"os"
	"path/filepath"

	"pathglob.dev/pkg/must"
)

// TempDir creates a temporary directory and registers its removal with
// c.Cleanup. The path has symlinks resolved, so it can be compared against
// paths reported by filesystem walks.
func TempDir(c Cleanuper) string {
	dir := must.OK1(os.MkdirTemp("", "pathglob-test"))
	dir = must.OK1(filepath.EvalSymlinks(dir))
	c.Cleanup(func() { os.RemoveAll(dir) })
	return dir
}

// Chdir changes into dir and registers changing back with c.Cleanup.
func Chdir(c Cleanuper, dir string) {
	orig := must.OK1(os.Getwd())
	must.Chdir(dir)
	c.Cleanup(func() { must.Chdir(orig) })
}

// InTempDir combines TempDir and Chdir.
func InTempDir(c Cleanuper) string {
	dir := TempDir(c)
	Chdir(c, dir)
	return dir
}

// Dir describes the contents of a directory: a string value is the content
// of a regular file, a nested Dir a subdirectory.
type Dir map[string]any

// ApplyDir creates the given filesystem layout in the current directory.
func ApplyDir(dir Dir) {
	applyDir(dir, "")
}

func applyDir(dir Dir, prefix string) {
	for name, file := range dir {
		p := filepath.Join(prefix, name)
		switch file := file.(type) {
		case string:
			must.OK(os.WriteFile(p, []byte(file), 0600))
		case Dir:
			must.MkdirAll(p)
			applyDir(file, p)
		default:
			panic(fmt.Sprintf("file is neither string nor Dir: %v", file))
		}
	}
}
