package oddcast

import "net/url"

const speechBaseURL = "https://cache-a.oddcast.com/tts/genC.php"

// Fixed account parameters sent with every synthesis request.
const (
	accountID = "9066743"
	sceneID   = "2770536"
	audioExt  = "mp3"
)

// BuildSpeechURL builds the synthesis request URL for the given identifiers
// and text. Every value is form-urlencoded, so the result is a valid
// absolute URL for arbitrary text. Identical inputs always produce the
// identical string.
func BuildSpeechURL(engineID, languageID, voiceID ID, text string) string {
	return speechBaseURL + speechQuery(engineID, languageID, voiceID, text)
}

// speechQuery emits the query string with the parameter order the service
// documents. url.Values would sort the keys.
func speechQuery(engineID, languageID, voiceID ID, text string) string {
	return "?EID=" + url.QueryEscape(string(engineID)) +
		"&LID=" + url.QueryEscape(string(languageID)) +
		"&VID=" + url.QueryEscape(string(voiceID)) +
		"&TXT=" + url.QueryEscape(text) +
		"&ACC=" + accountID +
		"&SceneID=" + sceneID +
		"&EXT=" + audioExt
}
