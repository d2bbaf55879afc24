package hcl_adapter

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/wheybags/wlang/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the source
// code. The HCL decoder populates omitted optional fields with non-nil,
// zero-width expression objects, so a simple nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return false
	}

	// A real attribute occupies bytes in the file, while a placeholder for an
	// omitted optional attribute has a zero-width range.
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"hcl_range", exprRange.String(),
		"is_defined", isDefined,
	)

	return isDefined
}

// evalInto evaluates expr and decodes the result into target, converting it
// to the cty type implied by target first. An omitted or null attribute
// leaves target untouched.
func evalInto(ctx context.Context, expr hcl.Expression, attrName string, evalCtx *hcl.EvalContext, target any) error {
	if !isExprDefined(ctx, expr, attrName) {
		return nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return fmt.Errorf("attribute %q: %w", attrName, diags)
	}
	if val.IsNull() {
		return nil
	}
	if !val.IsWhollyKnown() {
		return fmt.Errorf("attribute %q: value is not known", attrName)
	}

	targetPtr := reflect.ValueOf(target)
	if targetPtr.Kind() != reflect.Ptr || targetPtr.IsNil() {
		return fmt.Errorf("target for attribute %q must be a non-nil pointer, got %T", attrName, target)
	}
	impliedType, err := gocty.ImpliedType(targetPtr.Elem().Interface())
	if err != nil {
		return fmt.Errorf("attribute %q: %w", attrName, err)
	}

	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("attribute %q: cannot convert %s to %s: %w",
			attrName, val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}
	if err := gocty.FromCtyValue(converted, target); err != nil {
		return fmt.Errorf("attribute %q: %w", attrName, err)
	}
	return nil
}
