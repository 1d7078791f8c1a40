package oddcast

import (
	"encoding/json"
	"testing"
)

func testCatalog(t *testing.T) Catalog {
	t.Helper()
	data := []byte(`{
		"a": {"name": "English", "language_id": 1, "voices": {
			"x": {"voice_name": "Amy", "gender": "F", "engine_id": 9, "language_id": 1, "voice_id": 42}
		}},
		"b": {"name": "German", "language_id": 2, "voices": {
			"y": {"voice_name": "Klaus", "gender": "M", "engine_id": 9, "language_id": 2, "voice_id": 7},
			"z": {"voice_name": "Marlene", "gender": "F", "engine_id": 9, "language_id": 2, "voice_id": 8}
		}}
	}`)
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		t.Fatalf("Failed to unmarshal catalog: %v", err)
	}
	return catalog
}

func TestLanguages(t *testing.T) {
	catalog := testCatalog(t)

	languages := catalog.Languages()
	if len(languages) != 2 {
		t.Fatalf("Expected 2 languages, got %d", len(languages))
	}
	if languages[0].Name != "English" || languages[0].LanguageID != "1" {
		t.Errorf("Unexpected first language: %+v", languages[0])
	}
	if languages[1].Name != "German" || languages[1].LanguageID != "2" {
		t.Errorf("Unexpected second language: %+v", languages[1])
	}
}

func TestLanguagesEmptyCatalog(t *testing.T) {
	if got := Catalog(nil).Languages(); len(got) != 0 {
		t.Errorf("Expected no languages from nil catalog, got %v", got)
	}
	if got := (Catalog{}).Languages(); len(got) != 0 {
		t.Errorf("Expected no languages from empty catalog, got %v", got)
	}
}

func TestVoices(t *testing.T) {
	catalog := testCatalog(t)

	voices := catalog.Voices("English")
	if len(voices) != 1 {
		t.Fatalf("Expected 1 voice, got %d", len(voices))
	}
	want := VoiceSummary{Name: "Amy", Gender: "F", EngineID: "9", LanguageID: "1", VoiceID: "42"}
	if voices[0] != want {
		t.Errorf("Expected %+v, got %+v", want, voices[0])
	}
}

func TestVoicesUnknownLanguage(t *testing.T) {
	catalog := testCatalog(t)
	if got := catalog.Voices("French"); len(got) != 0 {
		t.Errorf("Expected no voices for unknown language, got %v", got)
	}
}

func TestVoicesEmptyInputs(t *testing.T) {
	catalog := testCatalog(t)
	if got := catalog.Voices(""); len(got) != 0 {
		t.Errorf("Expected no voices for empty language name, got %v", got)
	}
	if got := Catalog(nil).Voices("English"); len(got) != 0 {
		t.Errorf("Expected no voices from nil catalog, got %v", got)
	}
}

func TestVoicesFirstMatchWins(t *testing.T) {
	// Two entries named "English": only the first one's voices are visible,
	// even when the first has none.
	data := []byte(`{
		"a": {"name": "English", "language_id": 1},
		"b": {"name": "English", "language_id": 9, "voices": {
			"x": {"voice_name": "Shadow", "gender": "F", "engine_id": 1, "language_id": 9, "voice_id": 1}
		}}
	}`)
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		t.Fatalf("Failed to unmarshal catalog: %v", err)
	}

	if got := catalog.Voices("English"); len(got) != 0 {
		t.Errorf("Expected first matching entry (no voices) to win, got %v", got)
	}
}

func TestFindVoice(t *testing.T) {
	catalog := testCatalog(t)

	voice, ok := catalog.FindVoice("Marlene")
	if !ok {
		t.Fatal("Expected to find Marlene")
	}
	if voice.Name != "Marlene" || voice.VoiceID != "8" || voice.LanguageID != "2" {
		t.Errorf("Unexpected voice: %+v", voice)
	}

	if _, ok := catalog.FindVoice("Nadine"); ok {
		t.Error("Expected no match for unknown voice name")
	}
	if _, ok := catalog.FindVoice(""); ok {
		t.Error("Expected no match for empty voice name")
	}
	if _, ok := Catalog(nil).FindVoice("Amy"); ok {
		t.Error("Expected no match on nil catalog")
	}
}

func TestFindVoiceShortCircuits(t *testing.T) {
	// The same voice name in two languages: the first language's entry wins.
	data := []byte(`{
		"a": {"name": "English", "language_id": 1, "voices": {
			"x": {"voice_name": "Amy", "gender": "F", "engine_id": 9, "language_id": 1, "voice_id": 42}
		}},
		"b": {"name": "Welsh", "language_id": 6, "voices": {
			"y": {"voice_name": "Amy", "gender": "F", "engine_id": 9, "language_id": 6, "voice_id": 99}
		}}
	}`)
	var catalog Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		t.Fatalf("Failed to unmarshal catalog: %v", err)
	}

	voice, ok := catalog.FindVoice("Amy")
	if !ok {
		t.Fatal("Expected to find Amy")
	}
	if voice.LanguageID != "1" || voice.VoiceID != "42" {
		t.Errorf("Expected the first catalog entry's Amy, got %+v", voice)
	}
}
