package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"study-outline-tracker/internal/model"
	"study-outline-tracker/internal/outline"
)

const (
	// HeaderMarker introduces a new subject.
	HeaderMarker = "##"

	// TaskPattern matches a checkbox task line after trimming.
	// Example: "- [x] algebra" → groups: ["x", "algebra"]
	// The dash marker is optional, the bracket holds x/X or a space.
	TaskPattern = `^(?:-\s*)?\[([ xX])\]\s*(.*)$`
)

// Parser converts raw outline text into subjects with completion counters.
type Parser interface {
	Parse(content string) ([]model.Subject, error)
}

type parser struct {
	pattern *regexp.Regexp
}

func New() Parser {
	return &parser{
		pattern: regexp.MustCompile(TaskPattern),
	}
}

// Parse walks the document once, line by line. A "##" header opens a new
// subject and every following non-empty line becomes one of its tasks:
// checkbox lines carry their completion state, anything else is kept
// verbatim as an incomplete task. Lines before the first header and blank
// lines are dropped. The only failure mode is content that is not a valid
// UTF-8 string.
func (p *parser) Parse(content string) ([]model.Subject, error) {
	if !utf8.ValidString(content) {
		return nil, &outline.ParseError{Reason: "content is not valid UTF-8 text"}
	}

	subjects := []model.Subject{}
	var current *model.Subject

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, HeaderMarker) {
			name := strings.TrimSpace(strings.TrimPrefix(line, HeaderMarker))
			subjects = append(subjects, model.Subject{
				Name:  name,
				Tasks: []model.Task{},
			})
			current = &subjects[len(subjects)-1]
			continue
		}

		// Orphan lines before the first header are discarded.
		if current == nil {
			continue
		}

		task := model.Task{Text: line}
		if m := p.pattern.FindStringSubmatch(line); len(m) == 3 {
			task.Completed = strings.EqualFold(m[1], "x")
			task.Text = strings.TrimSpace(m[2])
		}
		current.AddTask(task)
	}

	return subjects, nil
}
