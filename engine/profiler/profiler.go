// Package profiler records nested timing scopes into a ring buffer and
// writes them as a speedscope evented profile.
package profiler

import (
	"encoding/json"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"go.trai.ch/zerr"
)

// ErrNoEvents is returned when there is nothing to write.
var ErrNoEvents = zerr.New("profiler has no events")

const speedscopeSchema = "https://www.speedscope.app/file-format-schema.json"

type event struct {
	atNS  int64
	frame int
	open  bool
}

// Recorder keeps the most recent scope events. A nil *Recorder records
// nothing, so callers can leave profiling off without branching.
type Recorder struct {
	cap   uint64
	write atomic.Uint64
	evs   []event

	mu     sync.Mutex
	frames []string
	index  map[string]int

	now func() int64
}

// New returns a recorder holding up to capacity events (two per scope).
func New(capacity int) *Recorder {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	return &Recorder{
		cap:   uint64(capacity),
		evs:   make([]event, capacity),
		index: make(map[string]int),
		now:   func() int64 { return time.Now().UnixNano() },
	}
}

// Start opens a scope and returns the func that closes it.
//
//	defer rec.Start("build senior programs")()
func (r *Recorder) Start(name string) func() {
	if r == nil {
		return func() {}
	}
	frame := r.intern(name)
	start := r.now()
	r.push(event{atNS: start, frame: frame, open: true})
	return func() {
		end := r.now()
		if end < start {
			end = start
		}
		r.push(event{atNS: end, frame: frame})
	}
}

// Len reports how many events are currently held.
func (r *Recorder) Len() int {
	if r == nil {
		return 0
	}
	return int(min(r.write.Load(), r.cap))
}

func (r *Recorder) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.cap] = e
}

func (r *Recorder) intern(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.index[name]; ok {
		return id
	}
	id := len(r.frames)
	r.index[name] = id
	r.frames = append(r.frames, name)
	return id
}

// snapshot returns the held events in write order.
func (r *Recorder) snapshot() []event {
	n := r.write.Load()
	start := uint64(0)
	if n > r.cap {
		start = n - r.cap
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.cap])
	}
	return out
}

// WriteSpeedscope writes the held events to path, replacing it atomically.
func (r *Recorder) WriteSpeedscope(path string, name string) error {
	if r == nil {
		return ErrNoEvents
	}
	r.mu.Lock()
	frames := make([]ssFrame, len(r.frames))
	for i, f := range r.frames {
		frames[i] = ssFrame{Name: f}
	}
	r.mu.Unlock()

	doc, err := speedscope(r.snapshot(), frames, name)
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "create profile"), "path", tmp)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return zerr.Wrap(err, "encode profile")
	}
	if err := f.Close(); err != nil {
		return zerr.Wrap(err, "close profile")
	}
	if err := os.Rename(tmp, path); err != nil {
		return zerr.With(zerr.Wrap(err, "write profile"), "path", path)
	}
	return nil
}

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // microseconds since the first event
	Frame int    `json:"frame"`
}

// speedscope converts events to an evented profile. Closes without a
// matching open (their open fell out of the ring) are dropped, and scopes
// still open at the end are closed at the last timestamp.
func speedscope(evs []event, frames []ssFrame, name string) (ssFile, error) {
	if len(evs) == 0 {
		return ssFile{}, ErrNoEvents
	}
	base := evs[0].atNS
	out := make([]ssEvent, 0, len(evs))
	stack := make([]int, 0, 16)
	last := int64(0)

	for _, e := range evs {
		at := max((e.atNS-base)/1000, last)
		if e.open {
			out = append(out, ssEvent{Type: "O", At: at, Frame: e.frame})
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: at, Frame: e.frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}
	if len(out) == 0 {
		return ssFile{}, ErrNoEvents
	}

	return ssFile{
		Schema: speedscopeSchema,
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     name,
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "tint-profiler",
		Name:     name,
	}, nil
}
