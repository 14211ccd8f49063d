package session

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/mihai/cvscope/internal/lexicon"
	"github.com/mihai/cvscope/internal/schemas"
	"github.com/mihai/cvscope/internal/types"
)

//go:embed session_schema.json
var sessionSchema string

// snapshot is the wire shape of an exported session. Analyses are not
// exported: they are derived data and recomputed from the JD on demand.
type snapshot struct {
	ID             string   `json:"id"`
	SavedAt        string   `json:"saved_at,omitempty"`
	ProfileID      string   `json:"profile_id,omitempty"`
	JobDescription string   `json:"job_description,omitempty"`
	CV             types.CV `json:"cv"`
}

// Export serializes the session for transfer between machines or app
// versions.
func (s *Session) Export() ([]byte, error) {
	snap := snapshot{
		ID:             s.ID,
		SavedAt:        time.Now().UTC().Format(time.RFC3339),
		ProfileID:      s.ProfileID,
		JobDescription: s.JobDescription,
		CV:             *s.CV,
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exporting session: %w", err)
	}
	return data, nil
}

// Import replaces the session content with a previously exported snapshot.
// The data is schema-validated first and decoded field by field; any failure
// leaves the session exactly as it was. A snapshot referencing a profile the
// current store does not know imports with the profile deselected, so a
// renamed library never blocks a restore.
func (s *Session) Import(data []byte) error {
	if err := schemas.ValidateJSONString(sessionSchema, string(data)); err != nil {
		return fmt.Errorf("invalid session file: %w", err)
	}

	// decode through a map so unknown-field policy stays in one place,
	// the schema; mapstructure reuses the json tags for field mapping
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid session file: %w", err)
	}
	var snap snapshot
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: &snap})
	if err != nil {
		return fmt.Errorf("decoding session file: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid session file: %w", err)
	}

	s.ID = snap.ID
	cv := snap.CV
	s.CV = &cv
	s.SetJobDescription(snap.JobDescription)
	if err := s.SetProfile(snap.ProfileID); err != nil {
		var unknownErr *lexicon.UnknownProfileError
		if errors.As(err, &unknownErr) {
			s.ProfileID = ""
		}
	}
	s.cache.Invalidate()
	return nil
}
