package domain

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language is one side of the fixed English/Spanish pair.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"

	Primary   = English
	Secondary = Spanish
)

// Tag is the regional tag sent to speech providers and the client.
func (l Language) Tag() string {
	switch l {
	case English:
		return "en-US"
	case Spanish:
		return "es-ES"
	default:
		return string(l)
	}
}

func (l Language) Opposite() Language {
	if l == English {
		return Spanish
	}
	return English
}

func (l Language) Valid() bool {
	return l == English || l == Spanish
}

// ParseLanguage accepts any BCP 47 tag whose base language is en or es.
func ParseLanguage(tag string) (Language, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return "", NewFailure(InvalidInput, fmt.Sprintf("invalid language tag %q", tag), err)
	}
	base, _ := t.Base()
	switch Language(base.String()) {
	case English:
		return English, nil
	case Spanish:
		return Spanish, nil
	}
	return "", NewFailure(InvalidInput, fmt.Sprintf("unsupported language %q", tag), nil)
}
