package langsvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codehem-go/codehem/internal/core"
)

const javascriptSample = `class Counter {
  constructor() {
    this.value = 0;
  }

  increment() {
    this.value += 1;
  }
}

function makeCounter() {
  return new Counter();
}
`

func TestJavaScriptDisablesTypeScriptOnlyKinds(t *testing.T) {
	svc := NewJavaScript()
	tree, err := svc.Extract(context.Background(), []byte(javascriptSample))
	require.NoError(t, err)

	for _, e := range tree.Elements {
		assert.NotEqual(t, core.KindInterface, e.Kind)
		assert.NotEqual(t, core.KindTypeAlias, e.Kind)
	}

	var class *core.Element
	for _, e := range tree.Elements {
		if e.Kind == core.KindClass && e.Name == "Counter" {
			class = e
		}
	}
	require.NotNil(t, class)
	_, ok := class.FindChild("increment", core.KindMethod)
	assert.True(t, ok)
}
