// Command listfiles resolves a glob-bearing path expression against the
// filesystem and prints every matching path on its own line.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"github.com/sirupsen/logrus"

	"pathglob.dev/pkg/pathglob"
)

var (
	app = kingpin.New("listfiles",
		"List the files and directories matching a glob path, e.g. 'src/**/*.go'.")
	pathArg  = app.Arg("path", "The glob path to list files in.").Required().String()
	absolute = app.Flag("absolute", "List files with absolute paths.").
			Short('a').Bool()
	ignoreCase = app.Flag("ignore-case", "Ignore case when comparing file names.").
			Short('i').Bool()
	caseSensitive = app.Flag("case-sensitive", "Enforce case when comparing file names.").
			Short('c').Bool()
	noFiles    = app.Flag("no-files", "Exclude regular files from the listing.").Bool()
	noDirs     = app.Flag("no-dirs", "Exclude directories from the listing.").Bool()
	failDenied = app.Flag("fail-on-access-denied",
		"Fail on unreadable directories instead of silently skipping them.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	var flags pathglob.Flags
	if *ignoreCase {
		flags |= pathglob.CaseInsensitivePaths
	}
	if *caseSensitive {
		flags |= pathglob.CaseSensitiveGlobs
	}
	if *noFiles {
		flags |= pathglob.NoFiles
	}
	if *noDirs {
		flags |= pathglob.NoDirectories
	}
	if *failDenied {
		flags |= pathglob.FailOnAccessDenied
	}

	it, err := pathglob.NewIterator(*pathArg, flags)
	if err != nil {
		logrus.WithField("path", *pathArg).Fatal(err)
	}
	for it.Next() {
		p := it.Path()
		if *absolute {
			if abs, err := filepath.Abs(p); err == nil {
				p = abs
			}
		}
		fmt.Println(p)
	}
	if err := it.Err(); err != nil {
		logrus.WithField("path", *pathArg).Fatal(err)
	}
}
