package analysisws

import (
	"context"
	"encoding/json"
	"log"
	"time"

	websocket "github.com/gofiber/contrib/websocket"
)

// Phase is one stage of the post-quiz analysis animation.
type Phase struct {
	Label    string        `json:"label"`
	Duration time.Duration `json:"-"`
}

var phases = []Phase{
	{Label: "Analyzing your health profile...", Duration: 1500 * time.Millisecond},
	{Label: "Calculating your BMI and health metrics...", Duration: 1500 * time.Millisecond},
	{Label: "Generating personalized recommendations...", Duration: 2000 * time.Millisecond},
	{Label: "Preparing your nutrition report...", Duration: 1500 * time.Millisecond},
}

type progressEvent struct {
	Type    string `json:"type"`
	Phase   int    `json:"phase,omitempty"`
	Total   int    `json:"total,omitempty"`
	Label   string `json:"label,omitempty"`
	Percent int    `json:"percent"`
}

// Streamer plays the analysis phases over a websocket connection. The
// schedule is driven server-side; a closed connection cancels the run and no
// timer outlives it.
type Streamer struct {
	phases []Phase
}

func NewStreamer() *Streamer {
	return &Streamer{phases: phases}
}

// Serve writes one progress event per phase, waits out its duration, then
// sends a final complete event. It returns when the run finishes or the peer
// goes away.
func (s *Streamer) Serve(conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reads are discarded; the read loop only detects disconnects.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	total := len(s.phases)
	for i, phase := range s.phases {
		event := progressEvent{
			Type:    "progress",
			Phase:   i + 1,
			Total:   total,
			Label:   phase.Label,
			Percent: i * 100 / total,
		}
		if !s.send(conn, event) {
			return
		}

		timer := time.NewTimer(phase.Duration)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	s.send(conn, progressEvent{Type: "complete", Percent: 100})
}

func (s *Streamer) send(conn *websocket.Conn, event progressEvent) bool {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("marshal progress event: %v", err)
		return false
	}
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return false
	}
	return true
}
