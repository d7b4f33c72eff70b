// Package driver wires the pipeline stages together:
// tokenize → convert to postfix → evaluate → format.
package driver

import (
	"errors"

	"reckon/internal/diag"
	"reckon/internal/lexer"
	"reckon/internal/rpn"
	"reckon/internal/shunt"
	"reckon/internal/source"
	"reckon/internal/token"
)

// DefaultMaxDiagnostics bounds the diagnostics collected per run.
const DefaultMaxDiagnostics = 16

// Result carries everything one pipeline run produced. The debug
// commands read Tokens and Postfix; ordinary callers only need Output.
type Result struct {
	Expr    string
	Output  string
	Value   float64
	Tokens  []token.Token
	Postfix []token.Token
	Bag     *diag.Bag
	FileSet *source.FileSet
	Stage   Stage
}

// Stage names the last pipeline stage a run reached.
type Stage uint8

const (
	StageTokenize Stage = iota
	StageConvert
	StageEval
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageTokenize:
		return "tokenize"
	case StageConvert:
		return "convert"
	case StageEval:
		return "eval"
	case StageDone:
		return "done"
	}
	return "unknown"
}

// Run executes the full pipeline over one expression, keeping all
// intermediate artifacts. Every call is independent; Run is safe for
// concurrent use.
func Run(expr string) *Result {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("expr", []byte(expr)))
	bag := diag.NewBag(DefaultMaxDiagnostics)
	rep := diag.BagReporter{Bag: bag}

	res := &Result{
		Expr:    expr,
		Bag:     bag,
		FileSet: fs,
		Stage:   StageTokenize,
	}

	res.Tokens = lexer.Tokenize(file, lexer.Options{Reporter: rep})
	if bag.HasErrors() {
		return res
	}

	res.Stage = StageConvert
	postfix, ok := shunt.Convert(res.Tokens, rep)
	if !ok {
		return res
	}
	res.Postfix = postfix

	res.Stage = StageEval
	value, ok := rpn.Eval(postfix, rep)
	if !ok {
		return res
	}

	res.Value = value
	res.Output = rpn.FormatValue(value)
	res.Stage = StageDone
	return res
}

// Err flattens the run's first error diagnostic into an error, or nil
// when the run succeeded.
func (r *Result) Err() error {
	if r.Stage == StageDone {
		return nil
	}
	if d, ok := r.Bag.FirstError(); ok {
		return errors.New(d.Message)
	}
	return errors.New("evaluation failed")
}

// Evaluate runs one expression and returns its formatted result, or a
// descriptive error. This is the single entry point the surrounding
// system calls.
func Evaluate(expr string) (string, error) {
	res := Run(expr)
	if err := res.Err(); err != nil {
		return "", err
	}
	return res.Output, nil
}
