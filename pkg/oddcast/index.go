package oddcast

import "log/slog"

// LanguageSummary is the projection of a catalog entry returned to callers.
type LanguageSummary struct {
	Name       string `json:"name"`
	LanguageID ID     `json:"language_id"`
}

// VoiceSummary is the projection of a Voice returned to callers. The
// catalog's voice_name field becomes Name.
type VoiceSummary struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	EngineID   ID     `json:"engine_id"`
	LanguageID ID     `json:"language_id"`
	VoiceID    ID     `json:"voice_id"`
}

func (v Voice) summary() VoiceSummary {
	return VoiceSummary{
		Name:       v.VoiceName,
		Gender:     v.Gender,
		EngineID:   v.EngineID,
		LanguageID: v.LanguageID,
		VoiceID:    v.VoiceID,
	}
}

// Languages returns one summary per catalog entry, in catalog order. Entries
// are projected as-is; missing fields stay zero values.
func (c Catalog) Languages() []LanguageSummary {
	if len(c) == 0 {
		return nil
	}
	out := make([]LanguageSummary, 0, len(c))
	for _, l := range c {
		out = append(out, LanguageSummary{Name: l.Name, LanguageID: l.LanguageID})
	}
	return out
}

// Voices returns the voices of the first entry whose name equals language,
// in catalog order. An unknown language or a matching entry without voices
// yields an empty result, not an error.
func (c Catalog) Voices(language string) []VoiceSummary {
	if language == "" {
		return nil
	}
	for _, l := range c {
		if l.Name != language {
			continue
		}
		if len(l.Voices) == 0 {
			slog.Warn("language has no voices", "language", language)
			return nil
		}
		out := make([]VoiceSummary, 0, len(l.Voices))
		for _, v := range l.Voices {
			out = append(out, v.summary())
		}
		return out
	}
	slog.Warn("language not found in catalog", "language", language)
	return nil
}

// FindVoice returns the first voice whose voice_name equals name, scanning
// languages and their voices in catalog order. The second return is false
// when no voice matches.
func (c Catalog) FindVoice(name string) (VoiceSummary, bool) {
	if name == "" {
		return VoiceSummary{}, false
	}
	for _, l := range c {
		for _, v := range l.Voices {
			if v.VoiceName == name {
				return v.summary(), true
			}
		}
	}
	return VoiceSummary{}, false
}
