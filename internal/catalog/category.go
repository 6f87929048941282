package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is a lowercase tag grouping related sounds.
type Category string

// Built-in categories, in menu order.
const (
	Classic Category = "classic"
	Gaming  Category = "gaming"
	Anime   Category = "anime"
	Comedy  Category = "comedy"
	Music   Category = "music"
)

var builtinCategories = []Category{Classic, Gaming, Anime, Comedy, Music}

var displayNames = map[Category]string{
	Classic: "Classic Memes",
	Gaming:  "Gaming",
	Anime:   "Anime",
	Comedy:  "Comedy",
	Music:   "Music & SFX",
}

// BuiltinCategories returns the built-in category tags in menu order.
func BuiltinCategories() []Category {
	return append([]Category(nil), builtinCategories...)
}

// NormalizeCategory trims and lowercases a category tag.
func NormalizeCategory(value string) Category {
	return Category(cases.Lower(language.Und).String(strings.TrimSpace(value)))
}

// DisplayName returns the human label for a category. Unknown tags are
// returned as-is.
func DisplayName(c Category) string {
	if name, ok := displayNames[c]; ok {
		return name
	}
	return string(c)
}
