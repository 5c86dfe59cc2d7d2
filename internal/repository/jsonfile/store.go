// Package jsonfile implements the repository interfaces over flat JSON
// files. The access pattern is always read-entire-file, mutate in
// memory, write-entire-file; there is no locking, so concurrent
// processes can race. That matches the single-user design.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hbatra/quizforge/internal/errors"
	"github.com/hbatra/quizforge/internal/logger"
)

// State file names inside the data directory.
const (
	ScoresFile       = "high_scores.json"
	AttemptsFile     = "attempts.json"
	CertAttemptsFile = "cert_attempts.json"
	CertResultsFile  = "certification_results.json"
	AssessmentsFile  = "custom_assessment.json"
	LinksFile        = "answer_links.json"
)

// readJSON decodes the file at path into v. A missing file leaves v at
// its zero value. A corrupt file does the same: history silently resets
// rather than erroring loudly, logged at WARN.
func readJSON(ctx context.Context, path string, v any) error {
	log := logger.FromContext(ctx).WithPrefix("jsonfile")

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Debug("state file absent, starting empty: %s", path)
		return nil
	}
	if err != nil {
		log.Error("failed to read state file %s: %v", path, err)
		return errors.NewStorageError(path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Warn("corrupt state file %s, treating as empty: %v", path, err)
		return nil
	}
	return nil
}

// writeJSON encodes v and replaces the file at path.
func writeJSON(ctx context.Context, path string, v any, indent string) error {
	log := logger.FromContext(ctx).WithPrefix("jsonfile")

	var (
		data []byte
		err  error
	)
	if indent != "" {
		data, err = json.MarshalIndent(v, "", indent)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		log.Error("failed to encode state for %s: %v", path, err)
		return errors.NewInternalError(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Error("failed to write state file %s: %v", path, err)
		return errors.NewStorageError(path, err)
	}
	log.Debug("state file written: %s (%d bytes)", path, len(data))
	return nil
}

func join(dir, name string) string {
	return filepath.Join(dir, name)
}
