package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"study-outline-tracker/internal/outline"
)

// ParseDocument converts an uploaded outline document into subjects with
// completion counters. Results are cached by content hash.
func (uc *implUseCase) ParseDocument(ctx context.Context, input outline.ParseDocumentInput) (outline.ParseDocumentOutput, error) {
	sum := sha256.Sum256(input.Content)
	key := hex.EncodeToString(sum[:])

	if cached, ok := uc.cache.Get(key); ok {
		uc.l.Debugf(ctx, "uc.ParseDocument: cache hit for %s", input.Filename)
		return cached, nil
	}

	subjects, err := uc.parser.Parse(string(input.Content))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ParseDocument Parse: %v", err)
		return outline.ParseDocumentOutput{}, err
	}

	output := outline.ParseDocumentOutput{
		Subjects:      subjects,
		TotalSubjects: len(subjects),
	}
	for _, s := range subjects {
		output.TotalTasks += s.Total
		output.CompletedTasks += s.Completed
	}

	uc.cache.Add(key, output)
	uc.l.Infof(ctx, "uc.ParseDocument: parsed %q into %d subjects, %d/%d tasks completed",
		input.Filename, output.TotalSubjects, output.CompletedTasks, output.TotalTasks)

	return output, nil
}
