package types

import (
	"sync"
	"sync/atomic"

	"github.com/fireant-io/tap-fireant/utils/typeutils"
	"github.com/goccy/go-json"
)

type StateType string

const (
	// StreamType is the only state shape this connector produces: one
	// bookmark map per stream, keyed by context symbol.
	StreamType StateType = "STREAM"
)

// State tracks replication bookmarks across runs. Bookmarks advance
// monotonically; the only way back is an explicit full-table reset.
type State struct {
	*sync.RWMutex `json:"-"`
	Type          StateType      `json:"type"`
	Streams       []*StreamState `json:"streams"`
}

func NewState() *State {
	return &State{
		RWMutex: &sync.RWMutex{},
		Type:    StreamType,
		Streams: []*StreamState{},
	}
}

func (s *State) IsZero() bool {
	for _, stream := range s.Streams {
		if stream.HoldsValue.Load() {
			return false
		}
	}
	return true
}

func (s *State) ResetStreams() {
	s.Lock()
	defer s.Unlock()
	s.Streams = s.Streams[:0]
}

func (s *State) initStreamState(stream *ConfiguredStream) *StreamState {
	for _, ss := range s.Streams {
		if ss.Stream == stream.Name() {
			return ss
		}
	}
	ss := &StreamState{
		Stream: stream.Name(),
	}
	s.Streams = append(s.Streams, ss)
	return ss
}

// GetCursor returns the bookmark stored for stream under key, or nil. For
// child streams the key is the context symbol; for uncontexted streams the
// cursor field name itself.
func (s *State) GetCursor(stream *ConfiguredStream, key string) any {
	if key == "" {
		return nil
	}
	s.RLock()
	defer s.RUnlock()

	for _, ss := range s.Streams {
		if ss.Stream == stream.Name() {
			value, _ := ss.State.Load(key)
			return value
		}
	}
	return nil
}

// SetCursor merges value into the bookmark for stream+key. The merge is a
// max: a value older than the stored bookmark leaves state untouched, which
// makes the operation idempotent and the bookmark monotonic.
func (s *State) SetCursor(stream *ConfiguredStream, key string, value any) {
	if key == "" || value == nil {
		return
	}
	s.Lock()
	defer s.Unlock()

	ss := s.initStreamState(stream)
	if prev, found := ss.State.Load(key); found && typeutils.Compare(value, prev) < 1 {
		return
	}
	ss.State.Store(key, value)
	ss.HoldsValue.Store(true)
}

// ResetCursor drops every bookmark held for the stream (full-table reset).
func (s *State) ResetCursor(stream *ConfiguredStream) {
	s.Lock()
	defer s.Unlock()

	for _, ss := range s.Streams {
		if ss.Stream == stream.Name() {
			ss.State.Range(func(key, _ any) bool {
				ss.State.Delete(key)
				return true
			})
			ss.HoldsValue.Store(false)
		}
	}
}

// MarshalJSON serializes only streams that actually hold bookmarks.
func (s *State) MarshalJSON() ([]byte, error) {
	populated := []*StreamState{}
	for _, ss := range s.Streams {
		if ss.HoldsValue.Load() {
			populated = append(populated, ss)
		}
	}

	type Alias State
	return json.Marshal(&struct {
		*Alias
		Streams []*StreamState `json:"streams"`
	}{
		Alias:   (*Alias)(s),
		Streams: populated,
	})
}

// StreamState is the bookmark map of a single stream. Values live in a
// sync.Map keyed by context symbol (or cursor field for the root stream).
type StreamState struct {
	HoldsValue atomic.Bool `json:"-"`

	Stream string   `json:"stream"`
	State  sync.Map `json:"state"`
}

// MarshalJSON flattens the sync.Map for serialization.
func (ss *StreamState) MarshalJSON() ([]byte, error) {
	stateMap := make(map[string]any)
	ss.State.Range(func(key, value any) bool {
		stateMap[key.(string)] = value
		return true
	})

	return json.Marshal(&struct {
		Stream string         `json:"stream"`
		State  map[string]any `json:"state"`
	}{
		Stream: ss.Stream,
		State:  stateMap,
	})
}

// UnmarshalJSON restores the sync.Map from the flattened form.
func (ss *StreamState) UnmarshalJSON(data []byte) error {
	temp := struct {
		Stream string         `json:"stream"`
		State  map[string]any `json:"state"`
	}{}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}

	ss.Stream = temp.Stream
	for key, value := range temp.State {
		ss.State.Store(key, value)
		ss.HoldsValue.Store(true)
	}
	return nil
}
