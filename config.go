package pagemix

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Vocabularies holds the event sets loaded from a vocabulary file.
type Vocabularies struct {
	Page EventSet
	App  EventSet
}

// fileVocabulary is the on-disk form of an event vocabulary:
//
//	page = ["onLoad", "onReady", "onShow"]
//	app  = ["onLaunch", "onShow", "onHide"]
type fileVocabulary struct {
	Page []string `toml:"page"`
	App  []string `toml:"app"`
}

// LoadVocabulary reads event vocabularies from a TOML file. Lists the file
// does not define fall back to the built-in PageEvents/AppEvents. The
// first entry of each list is its load event.
func LoadVocabulary(path string) (Vocabularies, error) {
	v := Vocabularies{Page: PageEvents, App: AppEvents}

	var raw fileVocabulary
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Vocabularies{}, fmt.Errorf("load vocabulary: %w", err)
	}

	if meta.IsDefined("page") {
		set, err := vocabularySet(raw.Page)
		if err != nil {
			return Vocabularies{}, fmt.Errorf("page vocabulary: %w", err)
		}
		v.Page = set
	}

	if meta.IsDefined("app") {
		set, err := vocabularySet(raw.App)
		if err != nil {
			return Vocabularies{}, fmt.Errorf("app vocabulary: %w", err)
		}
		v.App = set
	}

	return v, nil
}

// vocabularySet normalizes a name list into an EventSet. Blank entries are
// dropped; a list with nothing left is an error because a vocabulary
// without a load event cannot drive a merge.
func vocabularySet(names []string) (EventSet, error) {
	set := make(EventSet, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			set = append(set, n)
		}
	}
	if len(set) == 0 {
		return nil, ErrEmptyVocabulary
	}
	return set, nil
}
