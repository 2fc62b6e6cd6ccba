package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rangeconv/internal/types"
)

func TestManifestFileLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deps.yaml")
	content := []byte("source: hashicorp\ndependencies:\n  aws: \"~> 4.0\"\n  null-provider: \"3.2.1\"\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	adapter := NewManifestFileAdapter()
	manifest, err := adapter.Load(path)
	require.NoError(t, err)

	want := types.Manifest{
		Source: types.GrammarHashicorp,
		Dependencies: map[string]string{
			"aws":           "~> 4.0",
			"null-provider": "3.2.1",
		},
	}
	if diff := cmp.Diff(want, manifest); diff != "" {
		t.Fatalf("unexpected manifest (-want +got):\n%s", diff)
	}
}

func TestManifestFileLoadMissing(t *testing.T) {
	adapter := NewManifestFileAdapter()
	_, err := adapter.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestManifestFileLoadBadYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dependencies: [not: a: map"), 0o644))

	adapter := NewManifestFileAdapter()
	_, err := adapter.Load(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestManifestFileWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	manifest := types.Manifest{
		Source: types.GrammarNpm,
		Dependencies: map[string]string{
			"lodash": "~4.17.21",
		},
	}
	adapter := NewManifestFileAdapter()
	require.NoError(t, adapter.Write(path, manifest))

	loaded, err := adapter.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(manifest, loaded); diff != "" {
		t.Fatalf("round trip drifted (-want +got):\n%s", diff)
	}
}
