package lambda

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultMaxSteps bounds corpus cases that do not set max_steps.
const DefaultMaxSteps uint64 = 100000

// Corpus is a set of reduction fixtures loaded from YAML.
type Corpus struct {
	Path  string
	Cases []Case
}

// Case is one reduction fixture: a source term plus either its expected
// normal form or the expectation that reduction exhausts its step budget.
type Case struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Normal   string `yaml:"normal"`
	Diverges bool   `yaml:"diverges"`
	MaxSteps uint64 `yaml:"max_steps"`
}

// ValidationError aggregates corpus validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "corpus: invalid fixtures"
	}
	var b strings.Builder
	b.WriteString("corpus validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type corpusFile struct {
	Cases []Case `yaml:"cases"`
}

// LoadCorpus parses and validates a YAML reduction corpus.
func LoadCorpus(path string) (*Corpus, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer file.Close()
	return ReadCorpus(file, path)
}

// ReadCorpus decodes a corpus from r; path is used in error messages only.
func ReadCorpus(r io.Reader, path string) (*Corpus, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var raw corpusFile
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("corpus: %s is empty", path)
		}
		return nil, fmt.Errorf("corpus: parse %s: %w", path, err)
	}

	corpus := &Corpus{Path: path, Cases: raw.Cases}
	if err := corpus.validate(); err != nil {
		return nil, err
	}
	for i := range corpus.Cases {
		if corpus.Cases[i].MaxSteps == 0 {
			corpus.Cases[i].MaxSteps = DefaultMaxSteps
		}
	}
	return corpus, nil
}

func (c *Corpus) validate() error {
	var errs ValidationError
	if len(c.Cases) == 0 {
		errs.Issues = append(errs.Issues, "at least one case must be provided")
	}
	seen := make(map[string]struct{}, len(c.Cases))
	for i, cs := range c.Cases {
		where := cs.Name
		if where == "" {
			where = fmt.Sprintf("cases[%d]", i)
			errs.Issues = append(errs.Issues, where+": name must be provided")
		} else if _, dup := seen[cs.Name]; dup {
			errs.Issues = append(errs.Issues, where+": duplicate name")
		}
		seen[cs.Name] = struct{}{}
		if cs.Input == "" {
			errs.Issues = append(errs.Issues, where+": input must be provided")
		}
		if cs.Diverges && cs.Normal != "" {
			errs.Issues = append(errs.Issues, where+": normal and diverges are mutually exclusive")
		}
		if !cs.Diverges && cs.Normal == "" {
			errs.Issues = append(errs.Issues, where+": either normal or diverges must be set")
		}
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// Check runs a single case: parse the input, reduce it under the case's
// budget, and compare against the expectation. Normal forms are compared
// up to alpha equivalence.
func (cs Case) Check() error {
	term, err := Parse(cs.Input)
	if err != nil {
		return fmt.Errorf("%s: parse input: %w", cs.Name, err)
	}
	result, stats, err := ReduceWithLimit(term, cs.MaxSteps)
	if cs.Diverges {
		if !errors.Is(err, ErrMaxSteps) {
			return fmt.Errorf("%s: expected the %d-step budget to be exhausted, got a normal form after %d betas", cs.Name, cs.MaxSteps, stats.Betas)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: reduce: %w", cs.Name, err)
	}
	want, err := Parse(cs.Normal)
	if err != nil {
		return fmt.Errorf("%s: parse normal: %w", cs.Name, err)
	}
	if !AlphaEq(result, want) {
		return fmt.Errorf("%s: got %s, want %s", cs.Name, result, want)
	}
	return nil
}
