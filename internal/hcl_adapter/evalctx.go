package hcl_adapter

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/wheybags/wlang/internal/grammar"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext builds the variables and functions visible to attribute
// expressions.
func newEvalContext(environ []string) *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = cty.StringVal(v)
	}
	envVal := cty.MapValEmpty(cty.String)
	if len(env) > 0 {
		envVal = cty.MapVal(env)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envVal,
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"start":       cty.StringVal(grammar.DefaultStartRule),
				"end_marker":  cty.StringVal(grammar.DefaultEndMarker),
				"nil_keyword": cty.StringVal(grammar.DefaultNilKeyword),
			}),
		},
		Functions: map[string]function.Function{
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"format":    stdlib.FormatFunc,
			"join":      stdlib.JoinFunc,
			"concat":    stdlib.ConcatFunc,
			"trimspace": stdlib.TrimSpaceFunc,
		},
	}
}

func processEnv() []string {
	return os.Environ()
}
