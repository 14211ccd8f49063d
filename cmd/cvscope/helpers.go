package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/mihai/cvscope/internal/lexicon"
	"github.com/mihai/cvscope/internal/session"
	"github.com/mihai/cvscope/internal/types"
)

// readTextInput reads a text file, or stdin when path is "-".
func readTextInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// loadCV reads a CV JSON file into the structured CV form.
func loadCV(path string) (*types.CV, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading CV file %s: %w", path, err)
	}
	var cv types.CV
	if err := json.Unmarshal(data, &cv); err != nil {
		return nil, fmt.Errorf("parsing CV file %s: %w", path, err)
	}
	return &cv, nil
}

// writeJSON writes v as indented JSON.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// applyProfile selects a profile on the session. An unknown id is not fatal:
// the session stays on the core-only keyword set and the user gets a warning,
// so the tool remains usable with a stale profile name.
func applyProfile(sess *session.Session, log *zap.Logger, profileID string) error {
	if profileID == "" {
		return nil
	}
	err := sess.SetProfile(profileID)
	var unknownErr *lexicon.UnknownProfileError
	if errors.As(err, &unknownErr) {
		log.Warn("unknown profile, continuing with the core keyword set only",
			zap.String("profile", unknownErr.ProfileID))
		return nil
	}
	return err
}
