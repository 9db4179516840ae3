package journal

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/lawnchairsociety/adventure/internal/game"
)

// Recorder writes one session's turns. It satisfies game.Recorder.
type Recorder struct {
	journal *Journal
	id      int64
	ctx     context.Context
}

// StartSession opens a session row and returns a recorder for its turns.
// remote identifies the player's connection and is empty on the console.
func (j *Journal) StartSession(ctx context.Context, world, remote string) (*Recorder, error) {
	id, err := j.insert(ctx,
		`INSERT INTO sessions (world, remote, started_at) VALUES (?, ?, ?)`,
		world, remote, time.Now().UTC())
	if err != nil {
		return nil, errors.Wrap(err, "starting journal session")
	}
	return &Recorder{journal: j, id: id, ctx: ctx}, nil
}

// ID returns the session id
func (r *Recorder) ID() int64 {
	return r.id
}

func (r *Recorder) Record(turn game.Turn) error {
	_, err := r.journal.db.ExecContext(r.ctx, r.journal.db.Rebind(
		`INSERT INTO turns (session_id, number, room, input, output, forced, at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`),
		r.id, turn.Number, turn.Room, turn.Input, turn.Output, turn.Forced, turn.At.UTC())
	return errors.Wrapf(err, "recording turn %d", turn.Number)
}

// Finish stores why the game ended along with its summary as JSON. It still
// writes when the session's context was cancelled.
func (r *Recorder) Finish(summary game.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return errors.Wrap(err, "encoding summary")
	}

	_, err = r.journal.db.ExecContext(context.WithoutCancel(r.ctx), r.journal.db.Rebind(
		`UPDATE sessions SET ended_at = ?, reason = ?, summary = ? WHERE id = ?`),
		time.Now().UTC(), string(summary.Reason), string(data), r.id)
	return errors.Wrapf(err, "finishing session %d", r.id)
}

// DecodeSummary parses the summary stored for a finished session.
func DecodeSummary(s *SessionRecord) (*game.Summary, error) {
	if s.Summary == "" {
		return nil, errors.Errorf("session %d has not finished", s.ID)
	}
	var summary game.Summary
	if err := json.Unmarshal([]byte(s.Summary), &summary); err != nil {
		return nil, errors.Wrapf(err, "decoding summary of session %d", s.ID)
	}
	return &summary, nil
}
