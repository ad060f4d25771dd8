// Package translation holds machine translation providers.
package translation

import (
	"context"
	"errors"
	"fmt"
	"html"

	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// GoogleTranslator calls Cloud Translation v2.
type GoogleTranslator struct {
	svc *translate.Service
}

func NewGoogleTranslator(ctx context.Context, opts ...option.ClientOption) (*GoogleTranslator, error) {
	svc, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}
	return &GoogleTranslator{svc: svc}, nil
}

func (g *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	resp, err := g.svc.Translations.List([]string{text}, targetLang).
		Source(sourceLang).
		Format("text").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("google translate: %w", err)
	}
	if resp == nil || len(resp.Translations) == 0 {
		return "", errors.New("google translate: no translations in response")
	}
	return html.UnescapeString(resp.Translations[0].TranslatedText), nil
}
