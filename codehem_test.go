package codehem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectLanguageByExtension(t *testing.T) {
	lang, confidence := DetectLanguage(nil, "widget.py")
	assert.Equal(t, "python", lang)
	assert.Equal(t, 1.0, confidence)
}

func TestDetectLanguageByContent(t *testing.T) {
	lang, _ := DetectLanguage([]byte("def f():\n    self.x = 1\n"), "")
	assert.Equal(t, "python", lang)
}

func TestSupportedLanguagesIncludesAll(t *testing.T) {
	langs := SupportedLanguages()
	assert.Contains(t, langs, "python")
	assert.Contains(t, langs, "typescript")
	assert.Contains(t, langs, "javascript")
}

func TestExtractUnsupportedLanguage(t *testing.T) {
	_, err := Extract(context.Background(), "cobol", []byte("IDENTIFICATION DIVISION."))
	require.Error(t, err)
}

func TestEndToEndUpsertAndHash(t *testing.T) {
	src := []byte("def greet(name):\n    return \"hi \" + name\n")
	ctx := context.Background()

	tree, err := Extract(ctx, "python", src)
	require.NoError(t, err)

	elem, ok := FindElement(tree, "greet", KindFunction)
	require.True(t, ok)
	assert.Equal(t, "greet", elem.Name)

	out, err := UpsertElementByXPath(ctx, "python", src, "greet[function]", "def greet(name):\n    return \"hello \" + name\n")
	require.NoError(t, err)
	assert.Contains(t, string(out), "hello ")

	hash, err := GetElementHash(ctx, "python", src, "greet[function]")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
}
