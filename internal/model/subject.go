package model

// Task is one actionable line under a subject.
type Task struct {
	Text      string `json:"text"`      // Description with checkbox markup stripped
	Completed bool   `json:"completed"` // true if marked [x]
}

// Subject is a named grouping of tasks introduced by a "##" header line.
// Invariants: Completed <= Total, Total == len(Tasks).
type Subject struct {
	Name      string `json:"name"`
	Tasks     []Task `json:"tasks"`
	Completed int    `json:"completed"` // Count of completed tasks
	Total     int    `json:"total"`     // Count of all tasks
}

// AddTask appends a task and keeps the counters consistent.
func (s *Subject) AddTask(t Task) {
	s.Tasks = append(s.Tasks, t)
	s.Total++
	if t.Completed {
		s.Completed++
	}
}
