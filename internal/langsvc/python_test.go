package langsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codehem-go/codehem/internal/core"
)

const pythonSample = `import os


class Widget:
    """A widget."""

    count = 0

    def __init__(self, name):
        self.name = name

    @property
    def label(self):
        return self.name

    @label.setter
    def label(self, value):
        self.name = value


def make_widget(name):
    return Widget(name)
`

func TestPythonExtractInventory(t *testing.T) {
	svc := NewPython()
	tree, err := svc.Extract(context.Background(), []byte(pythonSample))
	require.NoError(t, err)

	var class *core.Element
	for _, e := range tree.Elements {
		if e.Kind == core.KindClass && e.Name == "Widget" {
			class = e
		}
	}
	require.NotNil(t, class)

	ctor, ok := class.FindChild("__init__", core.KindMethod)
	require.True(t, ok)
	assert.Equal(t, "Widget", ctor.ParentName)

	getter, ok := class.FindChild("label", core.KindPropertyGetter)
	require.True(t, ok)
	assert.Equal(t, core.KindPropertyGetter, getter.Kind)
	// Range must widen to the @property line, not just the def line.
	assert.Equal(t, 12, getter.Range.Start.Line)
	for _, child := range getter.Children {
		if child.Kind == core.KindDecorator {
			assert.True(t, getter.Range.Contains(child.Range), "getter range must contain its decorator")
		}
	}

	setter, ok := class.FindChild("label", core.KindPropertySetter)
	require.True(t, ok)
	assert.Equal(t, core.KindPropertySetter, setter.Kind)
	assert.Equal(t, 16, setter.Range.Start.Line)

	var fn *core.Element
	for _, e := range tree.Elements {
		if e.Kind == core.KindFunction && e.Name == "make_widget" {
			fn = e
		}
	}
	require.NotNil(t, fn)
}

func TestPythonUpsertMethodByXPath(t *testing.T) {
	svc := NewPython()
	ctx := context.Background()

	newMethod := "    def __init__(self, name):\n        self.name = name.upper()"
	out, err := svc.UpsertElementByXPath(ctx, []byte(pythonSample), "Widget[class].__init__[method]", newMethod)
	require.NoError(t, err)
	assert.Contains(t, string(out), "self.name = name.upper()")
}

func TestPythonRemoveMethodByXPath(t *testing.T) {
	svc := NewPython()
	ctx := context.Background()

	out, err := svc.RemoveElementByXPath(ctx, []byte(pythonSample), "make_widget[function]")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "def make_widget")
}

func TestPythonGetElementHashStable(t *testing.T) {
	svc := NewPython()
	ctx := context.Background()

	h1, err := svc.GetElementHash(ctx, []byte(pythonSample), "make_widget[function]")
	require.NoError(t, err)
	h2, err := svc.GetElementHash(ctx, []byte(pythonSample), "make_widget[function]")
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
	assert.NotEmpty(t, h1)
}
