package rpn_test

import (
	"math"
	"testing"

	"reckon/internal/diag"
	"reckon/internal/lexer"
	"reckon/internal/rpn"
	"reckon/internal/shunt"
	"reckon/internal/source"
	"reckon/internal/token"
)

// evalExpr прогоняет строку через полный конвейер до числа
func evalExpr(t *testing.T, input string) (float64, *diag.Bag, bool) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test", []byte(input)))
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}

	toks := lexer.Tokenize(file, lexer.Options{Reporter: rep})
	if bag.HasErrors() {
		return 0, bag, false
	}
	seq, ok := shunt.Convert(toks, rep)
	if !ok {
		return 0, bag, false
	}
	v, ok := rpn.Eval(seq, rep)
	return v, bag, ok
}

func expectValue(t *testing.T, input string, want float64) {
	t.Helper()
	v, bag, ok := evalExpr(t, input)
	if !ok {
		d, _ := bag.FirstError()
		t.Fatalf("Eval(%q) failed: %s", input, d.Message)
	}
	if math.Abs(v-want) > 1e-9 {
		t.Errorf("Eval(%q) = %v, want %v", input, v, want)
	}
}

func expectEvalError(t *testing.T, input string, code diag.Code) {
	t.Helper()
	_, bag, ok := evalExpr(t, input)
	if ok {
		t.Fatalf("Eval(%q) should fail", input)
	}
	d, found := bag.FirstError()
	if !found {
		t.Fatal("Expected a diagnostic")
	}
	if d.Code != code {
		t.Errorf("Eval(%q) code = %v, want %v", input, d.Code, code)
	}
}

func TestEval_Arithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2 + 3", 5},
		{"2 - 3", -1},
		{"2 * 3", 6},
		{"7 / 2", 3.5},
		{"2 ^ 10", 1024},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"2 ^ 3 ^ 2", 512},
		{"10 - 4 - 3", 3},
		{"100 / 10 / 5", 2},
		{"2 ^ -1", 0.5},
		{"4 ^ 0.5", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectValue(t, tt.input, tt.want)
		})
	}
}

func TestEval_UnaryMinus(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"-2", -2},
		{"--2", 2},
		{"3 * -2", -6},
		{"-2 + 3", 1},
		{"-(2 + 3)", -5},
		// зафиксированный контракт: унарный минус сильнее степени
		{"-2 ^ 2", 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectValue(t, tt.input, tt.want)
		})
	}
}

func TestEval_Functions(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"sqrt(16)", 4},
		{"sqrt(2)", math.Sqrt2},
		{"sqrt(0)", 0},
		{"sin(0)", 0},
		{"cos(0)", 1},
		{"tan(0)", 0},
		{"sin(1) + cos(1)", math.Sin(1) + math.Cos(1)},
		{"sqrt(sqrt(16))", 2},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectValue(t, tt.input, tt.want)
		})
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  diag.Code
	}{
		{"div by zero", "1 / 0", diag.EvalDivisionByZero},
		{"div by computed zero", "1 / (2 - 2)", diag.EvalDivisionByZero},
		{"div by negative zero", "1 / -0", diag.EvalDivisionByZero},
		{"sqrt negative", "sqrt(-1)", diag.EvalDomain},
		{"unknown function", "foo(1)", diag.EvalUnknownFunction},
		{"leading plus", "+5", diag.EvalInsufficientOperands},
		{"bare operator", "+", diag.EvalInsufficientOperands},
		{"missing right operand", "2 +", diag.EvalInsufficientOperands},
		{"two numbers", "2 3", diag.EvalMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectEvalError(t, tt.input, tt.code)
		})
	}
}

func TestEval_EmptyInput(t *testing.T) {
	// пустой вход → пустой стек в конце → malformed
	expectEvalError(t, "", diag.EvalMalformed)
}

func TestEval_InternalBadToken(t *testing.T) {
	// Скобка или голый Ident в постфиксном потоке — дефект конвертера.
	// Такое никогда не должно случаться на корректном конвейере.
	seqs := map[string][]token.Token{
		"lparen": {{Kind: token.LParen, Text: "("}},
		"rparen": {{Kind: token.RParen, Text: ")"}},
		"ident":  {{Kind: token.Ident, Text: "sqrt"}},
	}

	for name, seq := range seqs {
		t.Run(name, func(t *testing.T) {
			bag := diag.NewBag(4)
			_, ok := rpn.Eval(seq, diag.BagReporter{Bag: bag})
			if ok {
				t.Fatal("Eval should fail")
			}
			d, found := bag.FirstError()
			if !found {
				t.Fatal("Expected a diagnostic")
			}
			if d.Code != diag.InternalBadToken {
				t.Errorf("code = %v, want InternalBadToken", d.Code)
			}
			if !d.Code.IsInternal() {
				t.Error("InternalBadToken should classify as internal")
			}
		})
	}
}

func TestEval_DanglingIdentThroughPipeline(t *testing.T) {
	// "sqrt 4" протаскивает Ident сквозь конвертер; вычислитель обязан
	// поймать его как внутренний дефект, а не паниковать
	expectEvalError(t, "sqrt 4", diag.InternalBadToken)
}

func TestEval_NonFiniteFunctionResult(t *testing.T) {
	// tan(pi/2) остаётся конечным в IEEE (pi/2 не представимо точно),
	// поэтому собираем последовательность с sin(+Inf) = NaN вручную
	seq := []token.Token{
		{Kind: token.Number, Value: math.MaxFloat64},
		{Kind: token.Number, Value: math.MaxFloat64},
		{Kind: token.Star},
		{Kind: token.Func, Text: "sin"},
	}
	bag := diag.NewBag(4)
	_, ok := rpn.Eval(seq, diag.BagReporter{Bag: bag})
	if ok {
		t.Fatal("Eval should fail")
	}
	d, _ := bag.FirstError()
	if d.Code != diag.EvalNotFinite {
		t.Errorf("code = %v, want EvalNotFinite", d.Code)
	}
}

func TestEval_OperatorsDoNotCheckFiniteness(t *testing.T) {
	// только функции проверяют конечность результата; операторы — нет
	seq := []token.Token{
		{Kind: token.Number, Value: math.MaxFloat64},
		{Kind: token.Number, Value: math.MaxFloat64},
		{Kind: token.Star},
	}
	v, ok := rpn.Eval(seq, diag.NopReporter{})
	if !ok {
		t.Fatal("Eval should succeed")
	}
	if !math.IsInf(v, 1) {
		t.Errorf("v = %v, want +Inf", v)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{4, "4"},
		{-4, "-4"},
		{3.5, "3.5"},
		{0.5, "0.5"},
		{1024, "1024"},
		{10.0 / 3.0, "3.333333333333"},
		{1.0 / 3.0, "0.333333333333"},
		{-1.0 / 3.0, "-0.333333333333"},
		{2.5e-13, "0"}, // below 12 printed digits, strips down to "0"
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := rpn.FormatValue(tt.v); got != tt.want {
				t.Errorf("FormatValue(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestFormatValue_NeverTrailingDot(t *testing.T) {
	for _, v := range []float64{1, 2, 100, -7, 0.5, 12.25} {
		s := rpn.FormatValue(v)
		if len(s) > 0 && s[len(s)-1] == '.' {
			t.Errorf("FormatValue(%v) = %q ends with a dot", v, s)
		}
	}
}

func BenchmarkEval_Pipeline(b *testing.B) {
	input := "sqrt(16) + 2 ^ 3 * (4 - 1) / -2.5"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("bench", []byte(input)))

	b.ResetTimer()
	for b.Loop() {
		toks := lexer.Tokenize(file, lexer.Options{})
		seq, _ := shunt.Convert(toks, nil)
		rpn.Eval(seq, nil)
	}
}
