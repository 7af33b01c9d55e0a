package http

import (
	"time"

	"study-outline-tracker/internal/model"
	"study-outline-tracker/internal/outline"
)

// --- Request DTOs ---

type uploadReq struct {
	filename string
	content  []byte
}

func (r uploadReq) toInput() outline.ParseDocumentInput {
	return outline.ParseDocumentInput{
		Filename: r.filename,
		Content:  r.content,
	}
}

type progressReq struct {
	payload map[string]any
}

func (r progressReq) toInput() outline.RecordProgressInput {
	return outline.RecordProgressInput{
		Payload: r.payload,
	}
}

// --- Response DTOs ---

type taskResp struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type subjectResp struct {
	Name      string     `json:"name"`
	Tasks     []taskResp `json:"tasks"`
	Completed int        `json:"completed"`
	Total     int        `json:"total"`
}

func newSubjectResp(s model.Subject) subjectResp {
	tasks := make([]taskResp, len(s.Tasks))
	for i, t := range s.Tasks {
		tasks[i] = taskResp{Text: t.Text, Completed: t.Completed}
	}
	return subjectResp{
		Name:      s.Name,
		Tasks:     tasks,
		Completed: s.Completed,
		Total:     s.Total,
	}
}

type uploadResp struct {
	Subjects       []subjectResp `json:"subjects"`
	TotalSubjects  int           `json:"total_subjects"`
	TotalTasks     int           `json:"total_tasks"`
	CompletedTasks int           `json:"completed_tasks"`
}

func (h *handler) newUploadResp(out outline.ParseDocumentOutput) uploadResp {
	subjects := make([]subjectResp, len(out.Subjects))
	for i, s := range out.Subjects {
		subjects[i] = newSubjectResp(s)
	}
	return uploadResp{
		Subjects:       subjects,
		TotalSubjects:  out.TotalSubjects,
		TotalTasks:     out.TotalTasks,
		CompletedTasks: out.CompletedTasks,
	}
}

type progressResp struct {
	ReceiptID  string    `json:"receipt_id"`
	ReceivedAt time.Time `json:"received_at"`
	Status     string    `json:"status"`
}

func (h *handler) newProgressResp(out outline.RecordProgressOutput) progressResp {
	return progressResp{
		ReceiptID:  out.ReceiptID,
		ReceivedAt: out.ReceivedAt,
		Status:     "accepted",
	}
}
