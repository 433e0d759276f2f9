package bundle

import (
	"path/filepath"
	"testing"

	"github.com/oneconcern/scenebundle/pkg/scene"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	assetsDir  = "/tmp/assets"
	bundleRoot = "/work/output"
	scenePath  = "/scenes/scene.json"
)

// setupAssets prepares an in-memory filesystem with a few assets:
//
//	/tmp/assets/bg.png
//	/tmp/assets/fg.png
//	/tmp/assets/fonts/regular.ttf
//	/tmp/assets/fonts/extra/bold.ttf
//	/tmp/other/bg.png
func setupAssets(t testing.TB) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for pth, content := range map[string]string{
		"/tmp/assets/bg.png":               "background pixels",
		"/tmp/assets/fg.png":               "foreground pixels",
		"/tmp/assets/fonts/regular.ttf":    "regular glyphs",
		"/tmp/assets/fonts/extra/bold.ttf": "bold glyphs",
		"/tmp/other/bg.png":                "another background",
	} {
		writeFile(t, fs, pth, content)
	}
	return fs
}

func writeFile(t testing.TB, fs afero.Fs, pth, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(pth), 0755))
	require.NoError(t, afero.WriteFile(fs, pth, []byte(content), 0644))
}

func readFile(t testing.TB, fs afero.Fs, pth string) string {
	t.Helper()
	b, err := afero.ReadFile(fs, pth)
	require.NoError(t, err)
	return string(b)
}

func setupBundle(t testing.TB, fs afero.Fs, opts ...Option) *Bundle {
	t.Helper()
	b := New(append([]Option{Filesystem(fs), Root(bundleRoot)}, opts...)...)
	require.NoError(t, b.Initialize())
	return b
}

func parseTree(t testing.TB, doc string) *scene.Node {
	t.Helper()
	n, err := scene.Parse([]byte(doc))
	require.NoError(t, err)
	return n
}

func encodeTree(t testing.TB, n *scene.Node) string {
	t.Helper()
	b, err := n.MarshalJSON()
	require.NoError(t, err)
	return string(b)
}

func convertScene(t testing.TB, fs afero.Fs, doc string, opts ...Option) (Summary, error) {
	t.Helper()
	writeFile(t, fs, scenePath, doc)
	return Convert(scenePath, append([]Option{Filesystem(fs), Root(bundleRoot), Logger(zap.NewNop())}, opts...)...)
}
