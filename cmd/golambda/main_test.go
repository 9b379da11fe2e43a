package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vic/golambda/pkg/lambda"
)

func TestEvalSource(t *testing.T) {
	result, stats, _, err := evalSource("(λx.λy.x) a b", 0)
	if err != nil {
		t.Fatalf("evalSource error: %v", err)
	}
	if result != lambda.Term(lambda.Var{Name: "a"}) {
		t.Errorf("got %s, want a", result)
	}
	if stats.Betas != 2 {
		t.Errorf("counted %d betas, want 2", stats.Betas)
	}
}

func TestEvalSourceSyntaxError(t *testing.T) {
	_, _, _, err := evalSource("(a", 0)
	var syntaxErr *lambda.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("error is %T (%v), want *lambda.SyntaxError", err, err)
	}
}

func TestEvalSourceBudget(t *testing.T) {
	_, _, _, err := evalSource("(λx.x x) (λx.x x)", 100)
	if !errors.Is(err, lambda.ErrMaxSteps) {
		t.Fatalf("error = %v, want ErrMaxSteps", err)
	}
}

func TestRunCorpus(t *testing.T) {
	dir := t.TempDir()

	passing := filepath.Join(dir, "passing.yaml")
	if err := os.WriteFile(passing, []byte(`
cases:
  - name: id
    input: (λx.x) a
    normal: a
`), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := runCorpus(passing); code != 0 {
		t.Errorf("runCorpus(passing) = %d, want 0", code)
	}

	failing := filepath.Join(dir, "failing.yaml")
	if err := os.WriteFile(failing, []byte(`
cases:
  - name: wrong
    input: (λx.x) a
    normal: b
`), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := runCorpus(failing); code == 0 {
		t.Error("runCorpus(failing) = 0, want non-zero")
	}

	if code := runCorpus(filepath.Join(dir, "missing.yaml")); code == 0 {
		t.Error("runCorpus(missing) = 0, want non-zero")
	}
}
