package pathglob

import (
	"path"
	"strings"

	"pathglob.dev/pkg/glob"
)

// splitGlobPath splits a glob-bearing path into the part pipeline, ordered
// root to leaf. Runs of literal components collapse into one literalPart;
// a glob-bearing component becomes a globPart; "**" consumes the whole
// remainder of the path into a single treePart. The first part is based at
// the working directory immediately, so it can emit without an upstream
// stage driving it.
func splitGlobPath(globPath string, flags Flags) ([]partIterator, error) {
	comps := splitComponents(globPath)
	gf := flags.globFlags()
	skipDenied := flags&FailOnAccessDenied == 0

	var parts []partIterator
	var plain string
	flush := func() {
		if plain != "" {
			parts = append(parts, &literalPart{rel: plain, hasNext: len(parts) == 0})
			plain = ""
		}
	}

	for i, c := range comps {
		if c == "**" {
			flush()
			m, err := newMatcher(strings.Join(comps[i:], "/"), gf,
				flags&CaseInsensitivePaths != 0)
			if err != nil {
				return nil, err
			}
			parts = append(parts, &treePart{matcher: m, skipDenied: skipDenied})
			break
		}
		switch {
		case glob.IsPattern(c, gf):
			flush()
			gm, err := glob.Compile(c, gf)
			if err != nil {
				return nil, err
			}
			parts = append(parts, &globPart{matcher: gm, skipDenied: skipDenied})
		case flags&CaseInsensitivePaths != 0 && c != "/":
			// Forced per-entry comparison: the literal component goes
			// through the glob compiler so the directory scan does the
			// case folding instead of the filesystem.
			flush()
			gm, err := glob.Compile(c, gf|glob.CaseInsensitive)
			if err != nil {
				return nil, err
			}
			parts = append(parts, &globPart{matcher: gm, skipDenied: skipDenied})
		default:
			plain = joinPath(plain, c)
		}
	}
	flush()

	if len(parts) > 0 {
		parts[0].setBasePath("")
	}
	return parts, nil
}

// splitComponents cleans the path lexically and splits it into components,
// with "/" as the first component of a rooted path.
func splitComponents(p string) []string {
	p = path.Clean(p)
	var comps []string
	if strings.HasPrefix(p, "/") {
		comps = append(comps, "/")
		p = p[1:]
	}
	if p != "" {
		comps = append(comps, strings.Split(p, "/")...)
	}
	return comps
}
