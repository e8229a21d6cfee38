package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	lang       string
	aliases    []string
	extensions []string
}

func (f fakeService) Lang() string         { return f.lang }
func (f fakeService) Aliases() []string    { return f.aliases }
func (f fakeService) Extensions() []string { return f.extensions }

func TestRegisterAndGetByCanonicalName(t *testing.T) {
	r := New()
	svc := fakeService{lang: "python", aliases: []string{"py"}, extensions: []string{".py", ".pyi"}}
	require.NoError(t, r.Register(svc))

	got, ok := r.Get("python")
	require.True(t, ok)
	assert.Equal(t, "python", got.Lang())
}

func TestGetByAliasAndExtension(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(fakeService{lang: "typescript", aliases: []string{"ts"}, extensions: []string{".ts", ".mts"}}))

	_, ok := r.Get("ts")
	assert.True(t, ok)

	_, ok = r.Get(".ts")
	assert.True(t, ok)

	_, ok = r.Get("mts") // extension without leading dot normalizes too
	assert.True(t, ok)
}

func TestGetForFile(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(fakeService{lang: "javascript", extensions: []string{".js"}}))

	svc, ok := r.GetForFile("index.js")
	require.True(t, ok)
	assert.Equal(t, "javascript", svc.Lang())

	_, ok = r.GetForFile("no_extension")
	assert.False(t, ok)
}

func TestRegisterDuplicateLanguageOverwrites(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(fakeService{lang: "python", extensions: []string{".py"}}))
	require.NoError(t, r.Register(fakeService{lang: "python", extensions: []string{".py3"}}))

	svc, ok := r.Get("python")
	require.True(t, ok)
	assert.Equal(t, []string{".py3"}, svc.Extensions())
}

func TestRegisterDuplicateAliasOverwrites(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(fakeService{lang: "python", aliases: []string{"py"}}))
	require.NoError(t, r.Register(fakeService{lang: "other", aliases: []string{"py"}}))

	svc, ok := r.Get("py")
	require.True(t, ok)
	assert.Equal(t, "other", svc.Lang())
}

func TestRegisterNilServiceErrors(t *testing.T) {
	r := New()
	err := r.Register(nil)
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(fakeService{lang: "python"}))
	require.NoError(t, r.Register(fakeService{lang: "typescript"}))
	assert.ElementsMatch(t, []string{"python", "typescript"}, r.List())
}
