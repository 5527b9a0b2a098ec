package forge

import (
	"fmt"
	"sort"
)

// PackageFiles is the classified file set of a run: a mapping from role
// to the absolute source path that fills it. At most one source path may
// claim a role; two files classifying to the same role means the
// packaging artifacts are ambiguous.
type PackageFiles struct {
	paths map[FileType]string
}

// NewPackageFiles returns an empty classified file set.
func NewPackageFiles() *PackageFiles {
	return &PackageFiles{paths: make(map[FileType]string)}
}

// Insert records path as the source of role t. Inserting a role that is
// already present fails, naming the role.
func (f *PackageFiles) Insert(t FileType, path string) error {
	if _, dup := f.paths[t]; dup {
		return fmt.Errorf("found more than 1 %s file", t)
	}
	f.paths[t] = path
	return nil
}

// Path returns the source path recorded for role t.
func (f *PackageFiles) Path(t FileType) (string, bool) {
	p, ok := f.paths[t]
	return p, ok
}

// Len returns the number of classified files, the binary included.
func (f *PackageFiles) Len() int { return len(f.paths) }

// Types returns the present roles sorted by ordinal, so iteration over
// the set (staging, summaries) is reproducible across runs.
func (f *PackageFiles) Types() []FileType {
	types := make([]FileType, 0, len(f.paths))
	for t := range f.paths {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
