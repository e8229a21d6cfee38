package langsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codehem-go/codehem/internal/core"
)

const typescriptSample = `import { Logger } from "./logger";

export interface Shape {
  area(): number;
}

export class Circle implements Shape {
  private radius: number;

  constructor(radius: number) {
    this.radius = radius;
  }

  get diameter(): number {
    return this.radius * 2;
  }

  set diameter(value: number) {
    this.radius = value / 2;
  }

  area(): number {
    return Math.PI * this.radius * this.radius;
  }
}

export function describe(shape: Shape): string {
  return "area=" + shape.area();
}
`

func TestTypeScriptExtractInventory(t *testing.T) {
	svc := NewTypeScript()
	tree, err := svc.Extract(context.Background(), []byte(typescriptSample))
	require.NoError(t, err)

	var class *core.Element
	var fn *core.Element
	for _, e := range tree.Elements {
		if e.Kind == core.KindClass && e.Name == "Circle" {
			class = e
		}
		if e.Kind == core.KindFunction && e.Name == "describe" {
			fn = e
		}
	}
	require.NotNil(t, class)
	// Range must include the `export` keyword, not just the `class` line.
	assert.Equal(t, 7, class.Range.Start.Line)
	assert.Contains(t, class.Content, "export class Circle")

	require.NotNil(t, fn)
	assert.Equal(t, 27, fn.Range.Start.Line)
	assert.Contains(t, fn.Content, "export function describe")

	getter, ok := class.FindChild("diameter", core.KindPropertyGetter)
	require.True(t, ok)
	assert.Equal(t, core.KindPropertyGetter, getter.Kind)

	setter, ok := class.FindChild("diameter", core.KindPropertySetter)
	require.True(t, ok)
	assert.Equal(t, core.KindPropertySetter, setter.Kind)

	_, ok = class.FindChild("area", core.KindMethod)
	assert.True(t, ok)
}

func TestTypeScriptUpsertNewMethod(t *testing.T) {
	svc := NewTypeScript()
	ctx := context.Background()

	newMethod := "  perimeter(): number {\n    return 2 * Math.PI * this.radius;\n  }"
	out, err := svc.UpsertElementByXPath(ctx, []byte(typescriptSample), "Circle[class].perimeter[method]", newMethod)
	require.NoError(t, err)
	assert.Contains(t, string(out), "perimeter(): number")
}

func TestTypeScriptRemoveFunction(t *testing.T) {
	svc := NewTypeScript()
	ctx := context.Background()

	out, err := svc.RemoveElementByXPath(ctx, []byte(typescriptSample), "describe[function]")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "function describe")
}
