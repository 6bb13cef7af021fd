package assets

import (
	_ "embed"
	"fmt"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed strings.yaml
var stringsYAML []byte

const (
	AppName      = "app_name"
	TapMe        = "tap_me"
	YourScore    = "your_score"
	TimeLeft     = "time_left"
	GameOver     = "game_over"
	AboutTitle   = "about_title"
	AboutMessage = "about_message"
)

// Strings is a flat table of UI text keyed by resource name.
type Strings map[string]string

// ParseStrings decodes a YAML string table.
func ParseStrings(data []byte) (Strings, error) {
	s := Strings{}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse strings: %w", err)
	}
	return s, nil
}

// LoadStrings returns the embedded string table.
func LoadStrings() Strings {
	s, err := ParseStrings(stringsYAML)
	if err != nil {
		log.Fatal().Err(err).Msg("embedded strings are broken")
	}
	return s
}

// Get returns the text for key, or the key itself when it is missing.
func (s Strings) Get(key string) string {
	if v, ok := s[key]; ok {
		return v
	}
	return key
}

func (s Strings) Format(key string, args ...any) string {
	return fmt.Sprintf(s.Get(key), args...)
}
