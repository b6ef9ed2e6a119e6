// Package linear provides a synchronous, line-oriented renderer for
// estimation results, suitable for terminals and CI logs alike.
package linear

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"go.orqa.ch/estim/internal/core/domain"
	"go.orqa.ch/estim/internal/core/ports"
)

// Renderer implements ports.Renderer. Result rows go to stdout,
// progress chatter to stderr, so piping results stays clean.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer

	headerStyle lipgloss.Style
	termStyle   lipgloss.Style
	totalStyle  lipgloss.Style

	mu sync.Mutex
}

// NewRenderer creates a new Renderer. Nil writers default to the
// process streams.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	// Bind styling to the actual output so color detection follows the
	// destination, not the process TTY.
	lr := lipgloss.NewRenderer(stdout)

	return &Renderer{
		stdout:      stdout,
		stderr:      stderr,
		headerStyle: lr.NewStyle().Bold(true),
		termStyle:   lr.NewStyle().Foreground(lipgloss.Color("243")),
		totalStyle:  lr.NewStyle().Foreground(lipgloss.Color("111")),
	}
}

var _ ports.Renderer = (*Renderer)(nil)

// RenderPlan announces the tasks about to be estimated.
func (r *Renderer) RenderPlan(tasks []domain.EstimationTask) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "estimating %d task(s)\n", len(tasks))
	for i, task := range tasks {
		_, _ = fmt.Fprintf(r.stderr, "  [%d] %s (shots: %d)\n", i, task.Operator.String(), task.Shots)
	}
}

// RenderResult presents one task's expectation values: one row per
// operator term with the estimator's standard error, then the summed
// expectation value of the whole operator.
func (r *Renderer) RenderResult(index int, task domain.EstimationTask, values domain.ExpectationValues) {
	r.mu.Lock()
	defer r.mu.Unlock()

	header := fmt.Sprintf("task %d: %s", index, task.Operator.String())
	_, _ = fmt.Fprintln(r.stdout, r.headerStyle.Render(header))

	labels := termLabels(task.Operator, len(values.Values))
	var total float64
	for j, v := range values.Values {
		total += v
		row := fmt.Sprintf("  %-18s %+12.6f ± %.6f", labels[j], v, stdError(values, j))
		_, _ = fmt.Fprintln(r.stdout, r.termStyle.Render(row))
	}
	totalRow := fmt.Sprintf("  %-18s %+12.6f", "total", total)
	_, _ = fmt.Fprintln(r.stdout, r.totalStyle.Render(totalRow))
}

// RenderSummary closes the report.
func (r *Renderer) RenderSummary(total int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "estimated %d task(s)\n", total)
}

// termLabels returns one label per value row. Evaluation reports values
// against the simplified operator; when the simplified term list does
// not line up with the value count (a fully cancelled operator reduces
// to a single zero row), positional labels are used instead.
func termLabels(operator domain.IsingOperator, n int) []string {
	labels := make([]string, n)
	terms := operator.Simplify().Terms()
	for j := range labels {
		if len(terms) == n {
			labels[j] = terms[j].String()
		} else {
			labels[j] = fmt.Sprintf("term[%d]", j)
		}
	}
	return labels
}

// stdError is the square root of the estimator's variance for term j.
func stdError(values domain.ExpectationValues, j int) float64 {
	if len(values.EstimatorCovariances) == 0 {
		return 0
	}
	cov := values.EstimatorCovariances[0]
	if j >= cov.Dim() || cov[j][j] <= 0 {
		return 0
	}
	return math.Sqrt(cov[j][j])
}
