package reporting

import (
	"fmt"
	"io"

	"github.com/kbukum/edukit/logger"
	"github.com/kbukum/edukit/util"
	"github.com/kbukum/edukit/validation"
)

// PassingAverage is the lowest average that passes.
const PassingAverage = 70.0

// Status is the pass/fail outcome of a student's average.
type Status string

const (
	StatusPassed Status = "PASSED"
	StatusFailed Status = "FAILED"
)

// ScoreRecord holds one student's scores.
type ScoreRecord struct {
	Student string    `json:"student" yaml:"student"`
	Scores  []float64 `json:"scores" yaml:"scores"`
}

// Gradebook is an ordered list of score records. Student names are unique.
type Gradebook []ScoreRecord

// Students returns the student names in gradebook order.
func (b Gradebook) Students() []string {
	return util.Map(b, func(r ScoreRecord) string { return r.Student })
}

// GradeResult is the graded outcome for one student.
type GradeResult struct {
	Student string  `json:"student" yaml:"student"`
	Average float64 `json:"average" yaml:"average"`
	Status  Status  `json:"status" yaml:"status"`
}

func (r GradeResult) String() string {
	return fmt.Sprintf("Student: %s | Average: %.2f | Status: %s", r.Student, r.Average, r.Status)
}

// ValidateGradebook checks that the book is non-empty, that every student
// has at least one score and that no student appears twice.
func ValidateGradebook(book Gradebook) error {
	v := validation.New().NotEmpty("scores", len(book))
	for _, r := range book {
		v.Custom(len(r.Scores) > 0, "scores."+r.Student, fmt.Sprintf("no scores provided for %s", r.Student))
	}
	return v.Unique("student", book.Students()).Err()
}

// GradeStudents averages each student's scores in gradebook order.
func GradeStudents(book Gradebook) ([]GradeResult, error) {
	if err := ValidateGradebook(book); err != nil {
		return nil, err
	}

	results := make([]GradeResult, 0, len(book))
	failed := 0
	for _, r := range book {
		var sum float64
		for _, s := range r.Scores {
			sum += s
		}
		res := GradeResult{Student: r.Student, Average: sum / float64(len(r.Scores)), Status: StatusPassed}
		if res.Average < PassingAverage {
			res.Status = StatusFailed
			failed++
		}
		results = append(results, res)
	}

	logger.Get("reporting").Debug("graded students",
		logger.Fields(logger.FieldOperation, "grades", logger.FieldCount, len(results), "failed", failed))
	return results, nil
}

// AnalyzeGrades writes a grade report for book to w.
func AnalyzeGrades(w io.Writer, book Gradebook) error {
	results, err := GradeStudents(book)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "--- Student Grade Analysis ---"); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return nil
}
