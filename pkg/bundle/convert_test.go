package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oneconcern/scenebundle/pkg/errors"
	"github.com/oneconcern/scenebundle/pkg/scene"
	scenestatus "github.com/oneconcern/scenebundle/pkg/scene/status"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	yaml "gopkg.in/yaml.v2"
)

func TestConvertScenarios(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		expected string
		assets   map[string]string
	}{
		{
			name:     "file reference",
			input:    `{"sources":[{"settings":{"file":"/tmp/assets/bg.png"}}],"transitions":[]}`,
			expected: `{"sources":[{"settings":{"file":"<REPLACE|ME>/data/bg.png"}}],"transitions":[]}`,
			assets:   map[string]string{"bg.png": "background pixels"},
		},
		{
			name:     "no directory component",
			input:    `{"sources":[{"settings":{"text":"hello"}}],"transitions":[]}`,
			expected: `{"sources":[{"settings":{"text":"hello"}}],"transitions":[]}`,
		},
		{
			name:     "directory does not exist",
			input:    `{"sources":[{"settings":{"file":"/nonexistent/dir/x.png"}}],"transitions":[]}`,
			expected: `{"sources":[{"settings":{"file":"/nonexistent/dir/x.png"}}],"transitions":[]}`,
		},
		{
			name:     "nested reference",
			input:    `{"sources":[{"settings":{"layer":{"image":"/tmp/assets/fg.png"}}}],"transitions":[{"settings":{"file":"/tmp/assets/bg.png"}}]}`,
			expected: `{"sources":[{"settings":{"layer":{"image":"<REPLACE|ME>/data/fg.png"}}}],"transitions":[{"settings":{"file":"<REPLACE|ME>/data/bg.png"}}]}`,
			assets:   map[string]string{"fg.png": "foreground pixels", "bg.png": "background pixels"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fs := setupAssets(t)

			summary, err := convertScene(t, fs, tc.input)
			require.NoError(t, err)
			assert.Equal(t, len(tc.assets), summary.References)

			assert.Equal(t, tc.expected, readFile(t, fs, filepath.Join(bundleRoot, "data.json")))
			copied, err := afero.ReadDir(fs, filepath.Join(bundleRoot, "data"))
			require.NoError(t, err)
			assert.Len(t, copied, len(tc.assets))
			for name, content := range tc.assets {
				assert.Equal(t, content, readFile(t, fs, filepath.Join(bundleRoot, "data", name)))
			}
		})
	}
}

func TestConvertRerun(t *testing.T) {
	fs := setupAssets(t)
	const input = `{"sources":[{"name":"bg","settings":{"file":"/tmp/assets/bg.png","opacity":0.75,"fonts":"/tmp/assets/fonts"}}],` +
		`"transitions":[{"settings":{"stinger":"/tmp/assets/fg.png","duration":300}}],"current_scene":"main"}`

	_, err := convertScene(t, fs, input)
	require.NoError(t, err)
	first := readFile(t, fs, filepath.Join(bundleRoot, "data.json"))
	firstAssets := listTree(t, fs, filepath.Join(bundleRoot, "data"))

	_, err = convertScene(t, fs, input)
	require.NoError(t, err)
	assert.Equal(t, first, readFile(t, fs, filepath.Join(bundleRoot, "data.json")))
	assert.Equal(t, firstAssets, listTree(t, fs, filepath.Join(bundleRoot, "data")))

	assert.Equal(t, "<REPLACE|ME>/data/fonts", gjson.Get(first, "sources.0.settings.fonts").String())
	assert.Equal(t, "0.75", gjson.Get(first, "sources.0.settings.opacity").Raw)
	assert.Equal(t, "main", gjson.Get(first, "current_scene").String())

	// rewritten references are not references anymore
	doc, err := scene.Load(fs, filepath.Join(bundleRoot, "data.json"))
	require.NoError(t, err)
	b := New(Filesystem(fs), Root("/work/again"))
	require.NoError(t, b.Initialize())
	require.NoError(t, b.ResolveDocument(doc))
	assert.Zero(t, b.Summary().References)
	out, err := doc.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, first, string(out))
}

func TestConvertInputErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		err   error
	}{
		{name: "invalid JSON", input: `{"sources":[`, err: scenestatus.ErrInvalidJSON},
		{name: "not an object", input: `[]`, err: scenestatus.ErrNotAnObject},
		{name: "missing transitions", input: `{"sources":[{"settings":{"file":"/tmp/assets/bg.png"}}]}`, err: scenestatus.ErrMissingCollection},
		{name: "sources not an array", input: `{"sources":{},"transitions":[]}`, err: scenestatus.ErrInvalidCollection},
	} {
		t.Run(tc.name, func(t *testing.T) {
			fs := setupAssets(t)

			_, err := convertScene(t, fs, tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "unexpected error: %v", err)

			exists, err := afero.Exists(fs, bundleRoot)
			require.NoError(t, err)
			assert.False(t, exists, "no bundle is created on input errors")
		})
	}

	fs := afero.NewMemMapFs()
	_, err := Convert("/no/such/scene.json", Filesystem(fs), Root(bundleRoot))
	assert.True(t, errors.Is(err, scenestatus.ErrRead))
}

func TestConvertManifest(t *testing.T) {
	fs := setupAssets(t)
	const input = `{"sources":[{"settings":{"a":"/tmp/assets/bg.png","b":"/tmp/assets/fonts"}}],"transitions":[{"settings":{"c":"/tmp/other/bg.png"}}]}`

	summary, err := convertScene(t, fs, input, WithManifest(true))
	require.NoError(t, err)
	assert.Equal(t, 3, summary.References)
	assert.Equal(t, 4, summary.Files)
	assert.Equal(t, 1, summary.Collisions)

	var manifest Manifest
	require.NoError(t, yaml.Unmarshal([]byte(readFile(t, fs, filepath.Join(bundleRoot, "manifest.yaml"))), &manifest))
	assert.Equal(t, "data.json", manifest.Document)
	assert.Equal(t, DefaultPlaceholder, manifest.Placeholder)
	assert.Equal(t, []Asset{
		{Source: "/tmp/other/bg.png", Reference: "<REPLACE|ME>/data/bg.png", Kind: FileAsset, Size: int64(len("another background"))},
		{Source: "/tmp/assets/fonts", Reference: "<REPLACE|ME>/data/fonts", Kind: DirectoryAsset, Size: int64(len("regular glyphs") + len("bold glyphs"))},
	}, manifest.Assets)

	fs = setupAssets(t)
	_, err = convertScene(t, fs, input)
	require.NoError(t, err)
	exists, err := afero.Exists(fs, filepath.Join(bundleRoot, "manifest.yaml"))
	require.NoError(t, err)
	assert.False(t, exists, "the manifest is only written on demand")
}

func listTree(t testing.TB, fs afero.Fs, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	require.NoError(t, afero.Walk(fs, root, func(pth string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		files[pth] = readFile(t, fs, pth)
		return nil
	}))
	return files
}
