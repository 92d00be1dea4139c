package doctree

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/yaml"
)

// extToKind maps file extensions to canonical document kind names.
var extToKind = map[string]string{
	".json": "json",
	".yaml": "yaml",
	".yml":  "yaml",
}

// kindToGrammar maps document kinds to tree-sitter Language objects.
// JSON is valid YAML flow syntax, so both kinds parse through the yaml
// grammar. Lazily initialized on first call via sync.Once.
var (
	kindToGrammar map[string]*sitter.Language
	grammarsOnce  sync.Once
)

func initGrammars() {
	grammarsOnce.Do(func() {
		kindToGrammar = map[string]*sitter.Language{
			"json": yaml.GetLanguage(),
			"yaml": yaml.GetLanguage(),
		}
	})
}

// KindForFile returns the canonical document kind for a file path based on
// its extension. Returns ("", false) if the extension is not recognized.
func KindForFile(path string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	kind, ok := extToKind[ext]
	return kind, ok
}

// grammarForKind returns the tree-sitter Language for a canonical document
// kind. Returns (nil, false) if the kind is not supported.
func grammarForKind(kind string) (*sitter.Language, bool) {
	initGrammars()
	l, ok := kindToGrammar[kind]
	return l, ok
}
