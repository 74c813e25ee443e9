/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package oci provides utilities for pushing cluster archives to OCI registries.
package oci

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/distribution/reference"
	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"
)

// ArtifactType is the media type for ichnos cluster archive artifacts.
const ArtifactType = "application/vnd.nvidia.ichnos.archive"

// PushOptions configures the OCI push operation.
type PushOptions struct {
	// SourceDir is the archive root directory to push.
	SourceDir string
	// Registry is the host part, like "ghcr.io" or "localhost:5000".
	Registry string
	// Repository is the path under the registry, like "nvidia/cluster-archive".
	Repository string
	// Tag names the pushed artifact version. Required.
	Tag string
	// PlainHTTP talks to the registry over HTTP instead of HTTPS.
	PlainHTTP bool
	// InsecureTLS skips certificate verification on HTTPS connections.
	InsecureTLS bool
	// Annotations are added to the manifest (e.g., created timestamp).
	Annotations map[string]string
}

// PushResult contains the result of a successful OCI push.
type PushResult struct {
	// Digest of the pushed manifest.
	Digest string
	// Reference is the pushed "registry/repository:tag".
	Reference string
}

// Push packages the archive directory as a single-layer OCI artifact and
// pushes it to a registry using ORAS.
func Push(ctx context.Context, opts PushOptions) (*PushResult, error) {
	if opts.Tag == "" {
		return nil, fmt.Errorf("tag is required to push OCI image")
	}

	// Validate the composed reference before any packing work.
	registryHost := stripProtocol(opts.Registry)
	refString := fmt.Sprintf("%s/%s:%s", registryHost, opts.Repository, opts.Tag)
	if _, parseErr := reference.ParseNormalizedNamed(refString); parseErr != nil {
		return nil, fmt.Errorf("invalid image reference '%s': %w", refString, parseErr)
	}

	fs, _, err := packArchive(ctx, opts.SourceDir, opts.Tag, opts.Annotations)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fs.Close() }()

	repo, err := remote.NewRepository(fmt.Sprintf("%s/%s", registryHost, opts.Repository))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize remote repository: %w", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = authClient(opts.InsecureTLS)

	// Copy the tagged manifest and its layer out of the local store.
	desc, err := oras.Copy(ctx, fs, opts.Tag, repo, opts.Tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to push artifact to registry: %w", err)
	}

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: refString,
	}, nil
}

// packArchive stages the archive directory in a local ORAS file store,
// packs an OCI 1.1 manifest around it, and tags the manifest.
// The caller owns the returned store and must close it.
func packArchive(ctx context.Context, sourceDir, tag string, annotations map[string]string) (*file.Store, ociv1.Descriptor, error) {
	// Convert to absolute path to avoid ORAS working directory issues
	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, ociv1.Descriptor{}, fmt.Errorf("failed to get absolute path for archive dir: %w", err)
	}

	fs, err := file.New(absDir)
	if err != nil {
		return nil, ociv1.Descriptor{}, fmt.Errorf("failed to create file store: %w", err)
	}

	// Make tars deterministic so identical archives produce identical digests
	fs.TarReproducible = true

	// Add the whole archive tree from the file store root
	layerDesc, err := fs.Add(ctx, ".", ociv1.MediaTypeImageLayerGzip, absDir)
	if err != nil {
		_ = fs.Close()
		return nil, ociv1.Descriptor{}, fmt.Errorf("failed to add archive directory to store: %w", err)
	}

	// Pack an OCI 1.1 manifest with our artifact type
	packOpts := oras.PackManifestOptions{
		Layers: []ociv1.Descriptor{layerDesc},
	}
	if len(annotations) > 0 {
		packOpts.ManifestAnnotations = annotations
	}

	manifestDesc, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, ArtifactType, packOpts)
	if err != nil {
		_ = fs.Close()
		return nil, ociv1.Descriptor{}, fmt.Errorf("failed to pack manifest: %w", err)
	}

	// Tag the local manifest so we can copy by tag
	if tagErr := fs.Tag(ctx, manifestDesc, tag); tagErr != nil {
		_ = fs.Close()
		return nil, ociv1.Descriptor{}, fmt.Errorf("failed to tag manifest in local store: %w", tagErr)
	}

	return fs, manifestDesc, nil
}

// stripProtocol drops an http:// or https:// scheme so the host can be
// used in a docker reference.
func stripProtocol(registry string) string {
	registry = strings.TrimPrefix(registry, "https://")
	registry = strings.TrimPrefix(registry, "http://")
	return registry
}

// authClient builds the registry HTTP client: docker credential helpers
// for auth, optionally a transport that skips TLS verification.
func authClient(insecureTLS bool) *auth.Client {
	credStore, _ := credentials.NewStoreFromDocker(credentials.StoreOptions{})

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{}
		}
		transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
	}

	return &auth.Client{
		Client:     &http.Client{Transport: transport},
		Cache:      auth.NewCache(),
		Credential: credentials.Credential(credStore),
	}
}
