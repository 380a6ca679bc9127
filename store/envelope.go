// SPDX-License-Identifier: MIT

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/katalvlaran/bellmanford/bellmanford"
	"github.com/katalvlaran/bellmanford/snapshot"
)

// envelope is the document written by FileStore and RedisStore.
type envelope struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Status    string          `json:"status"`
	Nodes     int             `json:"nodes"`
	Edges     int             `json:"edges"`
	UpdatedAt time.Time       `json:"updatedAt"`
	State     json.RawMessage `json:"state"`
}

func encodeEnvelope(sess *Session) ([]byte, error) {
	state, err := snapshot.Encode(sess.State)
	if err != nil {
		return nil, err
	}
	sum := summarize(sess)
	env := envelope{
		ID:        sum.ID,
		Name:      sum.Name,
		Status:    sum.Status,
		Nodes:     sum.Nodes,
		Edges:     sum.Edges,
		UpdatedAt: sum.UpdatedAt,
		State:     state,
	}

	return json.MarshalIndent(env, "", "  ")
}

// decodeHeader reads the listing fields only.
func decodeHeader(data []byte) (Summary, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Summary{}, fmt.Errorf("store: decode session: %w", err)
	}

	return Summary{
		ID:        env.ID,
		Name:      env.Name,
		Status:    env.Status,
		Nodes:     env.Nodes,
		Edges:     env.Edges,
		UpdatedAt: env.UpdatedAt,
	}, nil
}

// decodeEnvelope restores the session stored under id. A document carrying
// any other id is rejected with bellmanford.ErrMalformedState.
func decodeEnvelope(data []byte, id string) (*Session, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("store: decode session: %w", err)
	}
	if env.ID != id {
		return nil, fmt.Errorf("store: session %s: %w: document id %q", id, bellmanford.ErrMalformedState, env.ID)
	}
	st, err := snapshot.Decode(env.State)
	if err != nil {
		return nil, fmt.Errorf("store: session %s: %w", env.ID, err)
	}

	return &Session{ID: env.ID, Name: env.Name, State: st, UpdatedAt: env.UpdatedAt}, nil
}
