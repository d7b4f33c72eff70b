package driver

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// LineResult is the outcome of evaluating one line of a batch input.
// Skip marks blank lines, which are kept so output stays aligned with
// the input.
type LineResult struct {
	Index int
	Expr  string
	Skip  bool
	Res   *Result
}

// EvaluateLines evaluates every non-blank line concurrently, workers
// capping the fan-out (<=0 means GOMAXPROCS). Results come back in
// input order. The core is pure, so the only coordination needed is
// one slot per line.
func EvaluateLines(ctx context.Context, lines []string, workers int) ([]LineResult, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]LineResult, len(lines))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)

	for i, line := range lines {
		expr := strings.TrimSpace(line)
		results[i] = LineResult{Index: i, Expr: expr, Skip: expr == ""}
		if results[i].Skip {
			continue
		}
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i].Res = Run(expr)
			return nil
		})
	}

	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
