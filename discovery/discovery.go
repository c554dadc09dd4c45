// Package discovery locates and classifies XBRL filing files on disk.
// Filings ship as a bundle of one instance document plus taxonomy schema
// and linkbase files; only the instance documents are parseable.
package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileType classifies a filing file.
type FileType string

const (
	// TypeInstance is an XBRL instance document.
	TypeInstance FileType = "instance"
	// TypeSchema is a taxonomy schema (.xsd).
	TypeSchema FileType = "schema"
	// TypeLinkbase is a calculation/presentation/label/definition linkbase.
	TypeLinkbase FileType = "linkbase"
	// TypeOther is anything else.
	TypeOther FileType = "other"
)

// linkbaseIndicators are the filename markers filers use for linkbase
// files alongside the instance document.
var linkbaseIndicators = []string{"_cal", "_pre", "_lab", "_def", "-cal", "-pre", "-lab", "-def"}

// Classify determines a filing file's type from its extension and
// filename. Linkbase files share the .xml extension with instance
// documents and are told apart by the conventional name markers.
func Classify(path string) FileType {
	base := strings.ToLower(filepath.Base(path))
	ext := filepath.Ext(base)

	switch ext {
	case ".xsd":
		return TypeSchema
	case ".xml", ".xbrl":
		name := strings.TrimSuffix(base, ext)
		for _, indicator := range linkbaseIndicators {
			if strings.Contains(name, indicator) {
				return TypeLinkbase
			}
		}
		return TypeInstance
	default:
		return TypeOther
	}
}

// FindInstances returns the instance documents under dir, sorted by
// path. pattern optionally filters by filename glob ("" matches all).
func FindInstances(dir string, recursive bool, pattern string) ([]string, error) {
	var instances []string

	appendMatch := func(path string) error {
		if Classify(path) != TypeInstance {
			return nil
		}
		if pattern != "" {
			ok, err := filepath.Match(pattern, filepath.Base(path))
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
		instances = append(instances, path)
		return nil
	}

	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			return appendMatch(path)
		})
		if err != nil {
			return nil, err
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if err := appendMatch(filepath.Join(dir, entry.Name())); err != nil {
				return nil, err
			}
		}
	}

	sort.Strings(instances)
	return instances, nil
}
