package oddcast

import (
	"net/url"
	"testing"
)

func TestBuildSpeechURL(t *testing.T) {
	got := BuildSpeechURL("9", "1", "42", "hello world")
	want := "https://cache-a.oddcast.com/tts/genC.php?EID=9&LID=1&VID=42&TXT=hello+world&ACC=9066743&SceneID=2770536&EXT=mp3"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestBuildSpeechURLDeterministic(t *testing.T) {
	first := BuildSpeechURL("9", "1", "42", "guten tag")
	second := BuildSpeechURL("9", "1", "42", "guten tag")
	if first != second {
		t.Errorf("Same inputs produced different URLs: %q vs %q", first, second)
	}
}

func TestBuildSpeechURLEscapesText(t *testing.T) {
	texts := []string{
		"a&b=c",
		"100% sicher?",
		"Es ist Mittwoch, meine Kerle.",
		"こんにちは",
		"späße & söße",
	}
	for _, text := range texts {
		raw := BuildSpeechURL("9", "1", "42", text)

		parsed, err := url.Parse(raw)
		if err != nil {
			t.Errorf("URL for %q does not parse: %v", text, err)
			continue
		}
		if !parsed.IsAbs() {
			t.Errorf("URL for %q is not absolute: %q", text, raw)
		}

		query, err := url.ParseQuery(parsed.RawQuery)
		if err != nil {
			t.Errorf("Query for %q does not parse: %v", text, err)
			continue
		}
		if query.Get("TXT") != text {
			t.Errorf("TXT round-trip failed: expected %q, got %q", text, query.Get("TXT"))
		}
		if query.Get("EID") != "9" || query.Get("LID") != "1" || query.Get("VID") != "42" {
			t.Errorf("Identifier parameters corrupted for %q: %v", text, query)
		}
		if query.Get("ACC") != "9066743" || query.Get("SceneID") != "2770536" || query.Get("EXT") != "mp3" {
			t.Errorf("Fixed account parameters corrupted for %q: %v", text, query)
		}
	}
}
