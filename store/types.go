// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/bellmanford/bellmanford"
)

// Sentinel errors.
var (
	// ErrNotFound indicates no session exists under the requested id.
	ErrNotFound = errors.New("store: session not found")

	// ErrInvalidID indicates an id that is not a session UUID.
	ErrInvalidID = errors.New("store: invalid session id")

	// ErrUnknownBackend is returned by Open for an unsupported Config.Backend.
	ErrUnknownBackend = errors.New("store: unknown backend")
)

// Session is one saved engine state.
type Session struct {
	ID        string
	Name      string
	State     bellmanford.State
	UpdatedAt time.Time
}

// Summary describes a session without decoding its state.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	Nodes     int       `json:"nodes"`
	Edges     int       `json:"edges"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store persists sessions. Every implementation is safe for concurrent use.
type Store interface {
	// Save inserts or replaces sess. An empty ID is filled with NewSessionID
	// and UpdatedAt is set to the save time; both are written back to sess.
	Save(ctx context.Context, sess *Session) error

	// Load returns the session stored under id, or ErrNotFound.
	// A stored state that fails validation returns bellmanford.ErrMalformedState.
	Load(ctx context.Context, id string) (*Session, error)

	// List returns every session, most recently updated first.
	List(ctx context.Context) ([]Summary, error)

	// Delete removes the session stored under id, or returns ErrNotFound.
	Delete(ctx context.Context, id string) error

	// Close releases the backend.
	Close() error
}

// NewSessionID returns a fresh random session id.
func NewSessionID() string { return uuid.NewString() }

// CheckID returns ErrInvalidID unless id is a canonical session UUID.
func CheckID(id string) error {
	u, err := uuid.Parse(id)
	if err != nil || u.String() != id {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	return nil
}

// summarize derives the listing fields of sess.
func summarize(sess *Session) Summary {
	return Summary{
		ID:        sess.ID,
		Name:      sess.Name,
		Status:    sess.State.Status().String(),
		Nodes:     sess.State.NodeCount(),
		Edges:     len(sess.State.Edges()),
		UpdatedAt: sess.UpdatedAt,
	}
}

// prepare returns the copy of sess to write, with its id and timestamp
// filled. sess itself is untouched until commit.
func prepare(sess *Session, now time.Time) (*Session, error) {
	staged := *sess
	if staged.ID == "" {
		staged.ID = NewSessionID()
	} else if err := CheckID(staged.ID); err != nil {
		return nil, err
	}
	staged.UpdatedAt = now.UTC()

	return &staged, nil
}

// commit copies the fields prepare assigned back to sess after a successful write.
func commit(sess, staged *Session) {
	sess.ID = staged.ID
	sess.UpdatedAt = staged.UpdatedAt
}

func notFound(id string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}
