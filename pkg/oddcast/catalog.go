package oddcast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is an opaque identifier assigned by the Oddcast service. The catalog
// encodes identifiers inconsistently as JSON strings or numbers, so both
// decode into the same string form and are passed through unmodified.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id ID) String() string {
	return string(id)
}

// Voice is one synthesizer voice nested under a Language. Key is the opaque
// JSON object key the voice was stored under.
type Voice struct {
	Key        string
	VoiceName  string
	Gender     string
	EngineID   ID
	LanguageID ID
	VoiceID    ID
}

// Language is one catalog entry. Key is the opaque JSON object key; Name is
// the identifier used for lookups. Voices may be empty.
type Language struct {
	Key        string
	Name       string
	LanguageID ID
	Voices     []Voice
}

// Catalog is the remote voice catalog. Entries keep the order of the source
// JSON object because lookups resolve ties by first match.
type Catalog []Language

func (c *Catalog) UnmarshalJSON(data []byte) error {
	entries, err := objectEntries(data)
	if err != nil {
		return err
	}
	out := make(Catalog, 0, len(entries))
	for _, e := range entries {
		var fields struct {
			Name       string          `json:"name"`
			LanguageID ID              `json:"language_id"`
			Voices     json.RawMessage `json:"voices"`
		}
		if err := json.Unmarshal(e.value, &fields); err != nil {
			return fmt.Errorf("language %q: %w", e.key, err)
		}
		lang := Language{Key: e.key, Name: fields.Name, LanguageID: fields.LanguageID}
		if len(fields.Voices) > 0 {
			voices, err := unmarshalVoices(fields.Voices)
			if err != nil {
				return fmt.Errorf("language %q: %w", e.key, err)
			}
			lang.Voices = voices
		}
		out = append(out, lang)
	}
	*c = out
	return nil
}

func unmarshalVoices(data []byte) ([]Voice, error) {
	entries, err := objectEntries(data)
	if err != nil {
		return nil, err
	}
	voices := make([]Voice, 0, len(entries))
	for _, e := range entries {
		var fields struct {
			VoiceName  string `json:"voice_name"`
			Gender     string `json:"gender"`
			EngineID   ID     `json:"engine_id"`
			LanguageID ID     `json:"language_id"`
			VoiceID    ID     `json:"voice_id"`
		}
		if err := json.Unmarshal(e.value, &fields); err != nil {
			return nil, fmt.Errorf("voice %q: %w", e.key, err)
		}
		voices = append(voices, Voice{
			Key:        e.key,
			VoiceName:  fields.VoiceName,
			Gender:     fields.Gender,
			EngineID:   fields.EngineID,
			LanguageID: fields.LanguageID,
			VoiceID:    fields.VoiceID,
		})
	}
	return voices, nil
}

type rawEntry struct {
	key   string
	value json.RawMessage
}

// objectEntries walks a JSON object and returns its key/value pairs in
// source order, which map-based decoding would lose. A JSON null yields no
// entries.
func objectEntries(data []byte) ([]rawEntry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected JSON object, got %v", tok)
	}
	var entries []rawEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		entries = append(entries, rawEntry{key: key, value: raw})
	}
	return entries, nil
}
