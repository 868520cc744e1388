package notice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Markdown(t *testing.T) {
	r := New()

	out, err := r.Render("**Akun Default**\n\n- admin@diskominfo.bogorkab.go.id")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<strong>Akun Default</strong>")
	assert.Contains(t, string(out), "<li>admin@diskominfo.bogorkab.go.id</li>")
}

func TestRender_StripsScripts(t *testing.T) {
	r := New()

	out, err := r.Render("hello <script>alert(1)</script> world")
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
	assert.Contains(t, string(out), "hello")
}

func TestRenderFile(t *testing.T) {
	r := New()

	path := filepath.Join(t.TempDir(), "notice.md")
	require.NoError(t, os.WriteFile(path, []byte("*info*"), 0o644))

	out, err := r.RenderFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<em>info</em>")
}

func TestRenderFile_MissingIsEmpty(t *testing.T) {
	r := New()

	out, err := r.RenderFile(filepath.Join(t.TempDir(), "absent.md"))
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = r.RenderFile("")
	require.NoError(t, err)
	assert.Empty(t, out)
}
