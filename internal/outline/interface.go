package outline

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// ParseDocument converts an uploaded outline document into subjects
	// with completion counters.
	ParseDocument(ctx context.Context, input ParseDocumentInput) (ParseDocumentOutput, error)

	// RecordProgress acknowledges a client progress snapshot without
	// persisting it.
	RecordProgress(ctx context.Context, input RecordProgressInput) (RecordProgressOutput, error)
}
