package tools

import (
	"fmt"
	"sync"
)

// camera is the tracked viewer state. The server does not render; it keeps
// the last commanded view so getCamera and the camera resource can answer.
type camera struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
	Height    float64 `json:"height"`
	Heading   float64 `json:"heading"`
	Pitch     float64 `json:"pitch"`
	Roll      float64 `json:"roll"`
}

// sessionState tracks per-session mutable state behind one mutex: the
// entity ID counter, live entity IDs, and the camera.
type sessionState struct {
	mu       sync.Mutex
	counter  int
	entities []string
	cam      camera
}

func newSessionState() *sessionState {
	// Default view: whole globe from high orbit.
	return &sessionState{cam: camera{Height: 15000000, Pitch: -90}}
}

func (st *sessionState) nextEntityID() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.counter++
	id := fmt.Sprintf("entity-%d", st.counter)
	st.entities = append(st.entities, id)
	return id
}

// removeEntity forgets an entity ID. Unknown IDs are not an error: the
// client may remove entities it created out of band.
func (st *sessionState) removeEntity(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	for i, e := range st.entities {
		if e == id {
			st.entities = append(st.entities[:i], st.entities[i+1:]...)
			return true
		}
	}
	return false
}

func (st *sessionState) clear() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	n := len(st.entities)
	st.entities = nil
	return n
}

func (st *sessionState) setCamera(c camera) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.cam = c
}

func (st *sessionState) cameraSnapshot() camera {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.cam
}

func (st *sessionState) entitySnapshot() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	out := make([]string, len(st.entities))
	copy(out, st.entities)
	return out
}
