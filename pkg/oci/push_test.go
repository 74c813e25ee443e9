/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

package oci

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/oci"
)

func TestStripProtocol(t *testing.T) {
	cases := map[string]string{
		"https://ghcr.io":        "ghcr.io",
		"http://localhost:5000":  "localhost:5000",
		"nvcr.io":                "nvcr.io",
		"registry.internal:8443": "registry.internal:8443",
		"https://nvcr.io/nvidia": "nvcr.io/nvidia",
	}

	for input, want := range cases {
		if got := stripProtocol(input); got != want {
			t.Errorf("stripProtocol(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestPush_RequiresTag(t *testing.T) {
	_, err := Push(context.Background(), PushOptions{
		SourceDir:  t.TempDir(),
		Registry:   "localhost:5000",
		Repository: "dev/scratch",
	})
	require.Error(t, err)
	assert.Equal(t, "tag is required to push OCI image", err.Error())
}

func TestPush_RejectsInvalidReference(t *testing.T) {
	// A bad reference must fail before any packing or network work.
	_, err := Push(context.Background(), PushOptions{
		SourceDir:  t.TempDir(),
		Registry:   "ghcr.io",
		Repository: "NVIDIA/Archive",
		Tag:        "v1.0.0",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid image reference")
}

// archiveFixture is a small dump tree resembling real archiver output.
var archiveFixture = map[string]string{
	"cluster-version.json":                "{\n  \"gitVersion\": \"v1.33.5\"\n}",
	"apis.json":                           `[{"group":"","version":"v1","kind":"Pod","plural":"pods"}]`,
	"default/Pod/web-0/raw.json":          `{"kind":"Pod","metadata":{"name":"web-0","namespace":"default"}}`,
	"default/Pod/web-0/logs-app.txt":      "2025-01-01T00:00:00Z started\n",
	"default/ConfigMap/cfg/raw.json":      `{"kind":"ConfigMap","metadata":{"name":"cfg","namespace":"default"}}`,
	"default/ConfigMap/cfg/data-app.yaml": "replicas: 3\n",
	"_global_/rbac.authorization.k8s.io/ClusterRole/admin/raw.json": `{"kind":"ClusterRole","metadata":{"name":"admin"}}`,
}

func writeArchiveFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range archiveFixture {
		fullPath := filepath.Join(dir, path)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0o755))
		require.NoError(t, os.WriteFile(fullPath, []byte(content), 0o644))
	}
	return dir
}

// packToLayout packs the tree and copies the tagged manifest into a fresh
// OCI layout store, the same flow Push runs against a real registry.
func packToLayout(t *testing.T, archiveDir, tag string, annotations map[string]string) (string, ociv1.Descriptor) {
	t.Helper()
	ctx := context.Background()

	layoutDir := t.TempDir()
	store, err := oci.New(layoutDir)
	require.NoError(t, err)

	fs, _, err := packArchive(ctx, archiveDir, tag, annotations)
	require.NoError(t, err)
	defer func() { _ = fs.Close() }()

	desc, err := oras.Copy(ctx, fs, tag, store, tag, oras.DefaultCopyOptions)
	require.NoError(t, err)
	return layoutDir, desc
}

func readBlob(t *testing.T, layoutDir, digest string) []byte {
	t.Helper()
	path := filepath.Join(layoutDir, "blobs", "sha256", strings.TrimPrefix(digest, "sha256:"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}

// untarGzip returns the regular files inside a gzipped tar blob, keyed by
// their path within the tar.
func untarGzip(t *testing.T, blob []byte) map[string]string {
	t.Helper()
	gzr, err := gzip.NewReader(bytes.NewReader(blob))
	require.NoError(t, err)
	defer gzr.Close()

	files := map[string]string{}
	tr := tar.NewReader(gzr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		if header.Typeflag != tar.TypeReg {
			continue
		}
		content, err := io.ReadAll(tr)
		require.NoError(t, err)
		files[header.Name] = string(content)
	}
	return files
}

// TestArchiveArtifactStructure packs an archive tree into an OCI layout
// store (standing in for a registry) and verifies the manifest shape and
// the layer contents byte for byte.
func TestArchiveArtifactStructure(t *testing.T) {
	archiveDir := writeArchiveFixture(t)
	created := "2025-08-22T10:00:00Z"

	layoutDir, desc := packToLayout(t, archiveDir, "v1.0.0-test", map[string]string{
		ociv1.AnnotationCreated: created,
	})

	var manifest ociv1.Manifest
	require.NoError(t, json.Unmarshal(readBlob(t, layoutDir, desc.Digest.String()), &manifest))

	assert.Equal(t, ArtifactType, manifest.ArtifactType)
	assert.Equal(t, created, manifest.Annotations[ociv1.AnnotationCreated])
	require.Len(t, manifest.Layers, 1)
	assert.Equal(t, ociv1.MediaTypeImageLayerGzip, manifest.Layers[0].MediaType)

	files := untarGzip(t, readBlob(t, layoutDir, manifest.Layers[0].Digest.String()))
	assert.Equal(t, archiveFixture, files)
}

// TestArchiveReproduciblePack verifies that packing the same tree twice with
// a fixed created annotation yields the same digest.
func TestArchiveReproduciblePack(t *testing.T) {
	archiveDir := writeArchiveFixture(t)
	annotations := map[string]string{
		ociv1.AnnotationCreated: "2000-01-01T00:00:00Z",
	}

	_, first := packToLayout(t, archiveDir, "repro", annotations)
	_, second := packToLayout(t, archiveDir, "repro", annotations)
	assert.Equal(t, first.Digest, second.Digest)
}
