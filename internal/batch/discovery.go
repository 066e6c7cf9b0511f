package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// discoverTextFiles finds the text files named by args. Directories are
// expanded, optionally recursively; plain files are taken as-is regardless
// of extension.
func discoverTextFiles(args []string, recursive bool, extensions []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			found, err := discoverInDirectory(arg, recursive, extensions)
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
		} else {
			files = append(files, arg)
		}
	}

	sort.Strings(files)
	return files, nil
}

// discoverInDirectory collects matching files from one directory.
func discoverInDirectory(dir string, recursive bool, extensions []string) ([]string, error) {
	var files []string

	walkFn := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if !recursive && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if hasExtension(path, extensions) {
			files = append(files, path)
		}
		return nil
	}

	return files, filepath.Walk(dir, walkFn)
}

// hasExtension reports whether the file matches one of the extensions.
// An empty extension list matches everything.
func hasExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}
