package greeting

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"greeter/pkg/logger"
)

// Env is the environment visible to greeting template expressions.
type Env struct {
	Name string `expr:"name"`
}

// Formatter renders the greeting body for a request path segment. The zero
// rendering is "Hello <name>"; a template expression from config can override
// it. Formatters are read-only after construction and safe for concurrent use.
type Formatter struct {
	program *vm.Program
}

// New compiles the optional template expression once. An empty template yields
// the built-in rendering.
func New(template string) (*Formatter, error) {
	if template == "" {
		return &Formatter{}, nil
	}
	program, err := expr.Compile(template, expr.Env(Env{}))
	if err != nil {
		return nil, fmt.Errorf("failed to compile greeting template %q: %w", template, err)
	}
	return &Formatter{program: program}, nil
}

// Format returns the greeting body for name. Template evaluation failures fall
// back to the built-in rendering rather than surfacing to the request.
func (f *Formatter) Format(name string) string {
	if f.program == nil {
		return "Hello " + name
	}

	out, err := expr.Run(f.program, Env{Name: name})
	if err != nil {
		logger.Warn("greeting template evaluation failed, using default", "error", err)
		return "Hello " + name
	}
	s, ok := out.(string)
	if !ok {
		logger.Warn("greeting template returned non-string, using default", "value", out)
		return "Hello " + name
	}
	return s
}
