package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"study-outline-tracker/internal/outline"
)

// RecordProgress acknowledges a client progress snapshot. Nothing is
// persisted; the receipt only confirms the payload arrived intact.
func (uc *implUseCase) RecordProgress(ctx context.Context, input outline.RecordProgressInput) (outline.RecordProgressOutput, error) {
	receipt := uuid.NewString()

	uc.l.Infof(ctx, "uc.RecordProgress: acknowledged payload with %d fields, receipt %s",
		len(input.Payload), receipt)

	return outline.RecordProgressOutput{
		ReceiptID:  receipt,
		ReceivedAt: time.Now().UTC(),
	}, nil
}
