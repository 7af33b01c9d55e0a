package outline

import (
	"time"

	"study-outline-tracker/internal/model"
)

// --- UseCase Inputs ---

type ParseDocumentInput struct {
	Filename string
	Content  []byte
}

type RecordProgressInput struct {
	Payload map[string]any
}

// --- UseCase Outputs ---

type ParseDocumentOutput struct {
	Subjects       []model.Subject
	TotalSubjects  int
	TotalTasks     int
	CompletedTasks int
}

type RecordProgressOutput struct {
	ReceiptID  string
	ReceivedAt time.Time
}
