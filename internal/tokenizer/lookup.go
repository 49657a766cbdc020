package tokenizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSearchDirs returns the directories searched for named tokenizer
// definitions, in order: user config dir, homebrew share, unix share.
func DefaultSearchDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "tokenwc", "tokenizers"))
	}
	dirs = append(dirs,
		"/opt/homebrew/share/tokenwc/tokenizers",
		"/usr/local/share/tokenwc/tokenizers",
	)
	return dirs
}

// Resolve finds a tokenizer by short name. Shipped names win; otherwise
// each search directory is checked for <name>.json, which is loaded as a
// HuggingFace tokenizer definition.
func Resolve(name string, searchDirs []string) (Tokenizer, error) {
	if _, ok := shipped[name]; ok {
		return FromEncoding(name)
	}

	filename := name + ".json"
	searched := make([]string, 0, len(searchDirs))
	for _, dir := range searchDirs {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return FromFile(path)
		}
		searched = append(searched, path)
	}

	return nil, &LoadError{
		Source: name,
		Err: fmt.Errorf("tokenizer %q not found, searched:\n  %s",
			name, strings.Join(searched, "\n  ")),
	}
}
