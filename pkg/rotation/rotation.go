// Package rotation persists the announcement queue and the recently spoken
// history. The board server and the announcer daemon run as separate
// processes sharing a data volume, so state lives in JSON files.
package rotation

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Item types.
const (
	TypePhrase = "phrase"
	TypeSound  = "sound"
)

// Item is a queued or spoken announcement. For phrases Text holds the words
// to synthesize and Voice the catalog voice name (empty means the daemon's
// default); for sounds Text names a file in the sound directory.
type Item struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
	Type  string `json:"type"`
}

// SpokenItem records when an announcement was played.
type SpokenItem struct {
	Item
	Timestamp time.Time `json:"timestamp"`
}

var (
	historyMu   sync.Mutex
	historyPath = "./announce-data/spoken.json"
	queueMu     sync.Mutex
	queuePath   = "./announce-data/queue.json"
)

// Init points the rotation files at a custom data directory so each service
// can use the correct volume mount location.
func Init(dataDir string) {
	historyMu.Lock()
	defer historyMu.Unlock()
	queueMu.Lock()
	defer queueMu.Unlock()

	historyPath = filepath.Join(dataDir, "spoken.json")
	queuePath = filepath.Join(dataDir, "queue.json")
}

// History returns all recorded spoken items.
func History() ([]SpokenItem, error) {
	historyMu.Lock()
	defer historyMu.Unlock()
	return readItems[SpokenItem](historyPath)
}

// MarkSpoken records that an announcement was just played and prunes
// entries older than the retention window.
func MarkSpoken(item Item, retention time.Duration) error {
	historyMu.Lock()
	defer historyMu.Unlock()

	items, err := readItems[SpokenItem](historyPath)
	if err != nil {
		return err
	}
	items = append(items, SpokenItem{Item: item, Timestamp: time.Now()})

	cutoff := time.Now().Add(-retention)
	var recent []SpokenItem
	for _, it := range items {
		if it.Timestamp.After(cutoff) {
			recent = append(recent, it)
		}
	}
	return writeItems(historyPath, recent)
}

// SpokenWithin returns the texts spoken within the given window, keyed for
// quick membership checks.
func SpokenWithin(window time.Duration) (map[string]bool, error) {
	items, err := History()
	if err != nil {
		return nil, err
	}
	cutoff := time.Now().Add(-window)
	spoken := make(map[string]bool)
	for _, it := range items {
		if it.Timestamp.After(cutoff) {
			spoken[it.Text] = true
		}
	}
	return spoken, nil
}

// Enqueue appends an item to the announcement queue.
func Enqueue(item Item) error {
	queueMu.Lock()
	defer queueMu.Unlock()

	queue, err := readItems[Item](queuePath)
	if err != nil {
		return err
	}
	queue = append(queue, item)
	return writeItems(queuePath, queue)
}

// Dequeue removes and returns the first queued item, or nil when the queue
// is empty.
func Dequeue() (*Item, error) {
	queueMu.Lock()
	defer queueMu.Unlock()

	queue, err := readItems[Item](queuePath)
	if err != nil {
		return nil, err
	}
	if len(queue) == 0 {
		return nil, nil
	}

	item := queue[0]
	if err := writeItems(queuePath, queue[1:]); err != nil {
		return nil, err
	}
	return &item, nil
}

// Pending returns all queued items without removing them.
func Pending() ([]Item, error) {
	queueMu.Lock()
	defer queueMu.Unlock()
	return readItems[Item](queuePath)
}

// readItems treats a missing file as an empty list. A corrupted state file
// is also treated as empty and gets rewritten on the next save.
func readItems[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

func writeItems[T any](path string, items []T) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
