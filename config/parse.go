package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// ParseConfig parses the HCL config and returns the struct
func ParseConfig[T Config](hclBytes []byte, filename string) (T, error) {
	// create a new instance of the target struct
	// (T is a pointer type - instantiate the underlying struct)
	var empty T
	target := reflect.New(reflect.TypeOf(empty).Elem()).Interface().(T)

	file, diags := hclsyntax.ParseConfig(hclBytes, filename, hcl.Pos{Line: 1, Column: 1})
	if diags != nil && diags.HasErrors() {
		return target, hclDiagsToError(fmt.Sprintf("failed to parse %s config", target.Identifier()), diags)
	}

	// empty eval context - config values are literals
	evalCtx := &hcl.EvalContext{
		Variables: make(map[string]cty.Value),
		Functions: make(map[string]function.Function),
	}

	diags = gohcl.DecodeBody(file.Body, evalCtx, target)
	if diags.HasErrors() {
		return target, hclDiagsToError(fmt.Sprintf("failed to decode %s config", target.Identifier()), diags)
	}

	return target, nil
}

func hclDiagsToError(prefix string, diags hcl.Diagnostics) error {
	var details []string
	for _, diag := range diags {
		if diag.Severity == hcl.DiagError {
			detail := diag.Summary
			if diag.Detail != "" {
				detail = fmt.Sprintf("%s: %s", diag.Summary, diag.Detail)
			}
			details = append(details, detail)
		}
	}
	return fmt.Errorf("%s: %s", prefix, strings.Join(details, ", "))
}
