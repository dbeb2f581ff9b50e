package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvsearch/search"
)

// Summary is the printable outcome of one search run.
type Summary struct {
	RunID       string
	Scenario    string
	Strategy    string
	Outcome     string
	Path        []string
	Cost        float64
	Actions     int
	Expanded    int
	Discovered  int
	MaxFrontier int
	Err         error
}

// NewRunID returns a fresh random run identifier.
func NewRunID() string { return uuid.NewString() }

// Summarize converts a search result into a Summary. label renders one
// state; nil uses fmt's %v. A nil result yields an Outcome of "error".
func Summarize[S comparable](scenario string, strategy search.Strategy, res *search.Result[S], label func(S) string) Summary {
	s := Summary{
		RunID:    NewRunID(),
		Scenario: scenario,
		Strategy: string(strategy),
		Outcome:  "error",
	}
	if res == nil {
		return s
	}
	if label == nil {
		label = func(v S) string { return fmt.Sprint(v) }
	}
	s.Outcome = res.Outcome.String()
	s.Expanded = res.Expanded
	s.Discovered = res.Discovered
	s.MaxFrontier = res.MaxFrontier
	if res.Found() {
		s.Cost = res.Cost()
		s.Actions = res.Node.Actions()
		for _, st := range res.Path() {
			s.Path = append(s.Path, label(st))
		}
	}

	return s
}

// WriteSummary prints s as aligned key/value lines.
func WriteSummary(w io.Writer, s Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"run", s.RunID},
		{"scenario", s.Scenario},
		{"strategy", s.Strategy},
		{"outcome", s.Outcome},
	}
	if s.Err != nil {
		rows = append(rows, [2]string{"error", s.Err.Error()})
	}
	if len(s.Path) > 0 {
		rows = append(rows,
			[2]string{"path", strings.Join(s.Path, " → ")},
			[2]string{"actions", fmt.Sprint(s.Actions)},
			[2]string{"cost", fmt.Sprintf("%.4f", s.Cost)},
		)
	}
	rows = append(rows,
		[2]string{"expanded", fmt.Sprint(s.Expanded)},
		[2]string{"discovered", fmt.Sprint(s.Discovered)},
		[2]string{"max frontier", fmt.Sprint(s.MaxFrontier)},
	)
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1]); err != nil {
			return err
		}
	}

	return tw.Flush()
}

// WriteComparison prints one row per summary, for side-by-side strategy runs.
func WriteComparison(w io.Writer, rows []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintln(tw, "strategy\toutcome\tactions\tcost\texpanded\tdiscovered\t"); err != nil {
		return err
	}
	for _, s := range rows {
		cost := "-"
		if len(s.Path) > 0 {
			cost = fmt.Sprintf("%.4f", s.Cost)
		}
		outcome := s.Outcome
		if s.Err != nil {
			outcome = "error"
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%d\t%d\t\n",
			s.Strategy, outcome, s.Actions, cost, s.Expanded, s.Discovered); err != nil {
			return err
		}
	}

	return tw.Flush()
}
