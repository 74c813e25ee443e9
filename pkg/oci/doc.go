// Package oci provides functionality for pushing cluster archives to OCI-compliant registries.
//
// This package lets a finished archive directory be pushed to any OCI-compliant
// registry (Docker Hub, GHCR, ECR, local registries, etc.) using the ORAS
// (OCI Registry As Storage) library. The whole tree is packed as a single
// gzipped tar layer inside an OCI 1.1 artifact manifest.
//
// # Overview
//
// The package provides two main operations:
//   - ParseOutputTarget: Parses an oci:// URI or local path into its components
//   - Push: Packs an archive directory and pushes it to a remote registry
//
// # Core Types
//
//   - Reference: Parsed push target (registry, repository, tag, or local path)
//   - PushOptions: Configuration for pushing to remote registries
//   - PushResult: Result of a successful push (digest, reference)
//
// # Usage
//
//	ref, err := oci.ParseOutputTarget("oci://ghcr.io/nvidia/cluster-archive:v1.0.0")
//	if err != nil {
//	    return err
//	}
//
//	result, err := oci.Push(ctx, oci.PushOptions{
//	    SourceDir:  "/path/to/archive",
//	    Registry:   ref.Registry,
//	    Repository: ref.Repository,
//	    Tag:        ref.Tag,
//	})
//
// # Configuration
//
// PushOptions supports several configuration options:
//   - PlainHTTP: Use HTTP instead of HTTPS (for local development registries)
//   - InsecureTLS: Skip TLS certificate verification
//   - Annotations: Extra manifest annotations (created timestamp, cluster version)
//
// Tars are created in reproducible mode, so pushing the same archive tree with
// a fixed created annotation yields the same digest.
//
// # Authentication
//
// The package automatically uses Docker credential helpers for authentication.
// Credentials are loaded from the standard Docker configuration (~/.docker/config.json)
// using the ORAS credentials package.
//
// # Artifact Type
//
// Artifacts are pushed with the media type "application/vnd.nvidia.ichnos.archive".
// This custom media type identifies cluster archives and distinguishes them from
// runnable container images. Consumers that don't understand this type should
// treat the artifact as a non-executable blob.
package oci
