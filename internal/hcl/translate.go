package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/specialistvlad/craftplan/internal/config"
)

// translateComponent converts a raw component block into the agnostic model.
func (l *Loader) translateComponent(block *componentBlock) (*config.ComponentDef, error) {
	def := &config.ComponentDef{
		Name:     block.Name,
		Seconds:  block.Seconds,
		Producer: block.Producer,
	}

	// An omitted producer means a raw resource, matching the omitted
	// seconds attribute it usually accompanies.
	if def.Producer == "" {
		def.Producer = "infinite"
	}

	if block.Ingredients != nil {
		ingredients, err := l.decodeQuantityMap(block.Ingredients.Value(nil))
		if err != nil {
			return nil, fmt.Errorf("component %q: invalid ingredients: %w", block.Name, err)
		}
		def.Ingredients = ingredients
	}
	return def, nil
}

// translateSpeeds converts the free-form attributes of a `speeds` block
// into a category-name → multiplier map.
func (l *Loader) translateSpeeds(block *speedsBlock) (map[string]float64, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid speeds block: %w", diags)
	}

	speeds := make(map[string]float64, len(attrs))
	for name, attr := range attrs {
		multiplier, err := l.decodeNumber(attr.Expr.Value(nil))
		if err != nil {
			return nil, fmt.Errorf("speeds attribute %q: %w", name, err)
		}
		speeds[name] = multiplier
	}
	return speeds, nil
}

// decodeQuantityMap evaluates an ingredients expression into name →
// quantity pairs. Both object and map syntax are accepted.
func (l *Loader) decodeQuantityMap(val cty.Value, diags hcl.Diagnostics) (map[string]float64, error) {
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() {
		return nil, nil
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return nil, fmt.Errorf("expected a map of quantities, got %s", val.Type().FriendlyName())
	}

	quantities := make(map[string]float64)
	for name, qty := range val.AsValueMap() {
		f, err := l.decodeNumber(qty, nil)
		if err != nil {
			return nil, fmt.Errorf("quantity of %q: %w", name, err)
		}
		quantities[name] = f
	}
	return quantities, nil
}

// decodeNumber evaluates an expression result into a float64.
func (l *Loader) decodeNumber(val cty.Value, diags hcl.Diagnostics) (float64, error) {
	if diags.HasErrors() {
		return 0, diags
	}
	num, err := convert.Convert(val, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %s", val.Type().FriendlyName())
	}
	f, _ := num.AsBigFloat().Float64()
	return f, nil
}
