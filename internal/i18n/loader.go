// Package i18n loads translations from embedded JSON (pt, en). The language comes from Accept-Language.
package i18n

import (
	"embed"
	"encoding/json"
	"sync"
)

//go:embed pt/*.json en/*.json
var fs embed.FS

var (
	mu    sync.RWMutex
	packs = make(map[string]map[string]string) // language -> key -> message
)

// Supported languages. Portuguese is the default of the site.
const (
	LangPT = "pt"
	LangEN = "en"

	Default = LangPT
)

// Supported lists the languages in preference order.
var Supported = []string{LangPT, LangEN}

// Load reads the embedded pack of every language; a missing or broken file falls back to defaultMessages.
func Load() error {
	mu.Lock()
	defer mu.Unlock()
	for _, lang := range Supported {
		data, err := fs.ReadFile(lang + "/messages.json")
		if err != nil {
			packs[lang] = defaultMessages()
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(data, &m); err != nil {
			packs[lang] = defaultMessages()
			continue
		}
		packs[lang] = m
	}
	return nil
}

func defaultMessages() map[string]string {
	return map[string]string{
		"error.unauthorized": "unauthorized",
		"error.not_found":    "not found",
		"error.rate_limit":   "rate limit exceeded",
		"error.internal":     "internal server error",
		"ok":                 "ok",
	}
}

// IsSupported reports whether lang has a pack.
func IsSupported(lang string) bool {
	for _, l := range Supported {
		if l == lang {
			return true
		}
	}
	return false
}

// T returns the message for key in lang, falling back to the default language, then to the key itself.
func T(lang, key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if m, ok := packs[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if m, ok := packs[Default]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	return key
}
