package descriptor

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codehem-go/codehem/internal/core"
)

func TestElementTypeDescriptorQueryBased(t *testing.T) {
	d := ElementTypeDescriptor{
		ElementType:     core.KindDecorator,
		TreeSitterQuery: `(decorator) @decorator`,
		RegexpPattern:   regexp.MustCompile(`^@(\w+)`),
	}
	assert.False(t, d.CustomExtract)
	assert.NotEmpty(t, d.TreeSitterQuery)
	assert.NotNil(t, d.RegexpPattern)
}

func TestElementTypeDescriptorCustomExtract(t *testing.T) {
	d := ElementTypeDescriptor{ElementType: core.KindMethod, CustomExtract: true}
	assert.True(t, d.CustomExtract)
	assert.Empty(t, d.TreeSitterQuery)
	assert.Nil(t, d.RegexpPattern)
}
