// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oci

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/NVIDIA/cluster-archive/pkg/errors"
)

// URIScheme marks a push target as an OCI registry reference,
// as in "oci://ghcr.io/org/repo:tag".
const URIScheme = "oci://"

// Reference is a parsed push target: either an OCI image reference or a
// plain local directory.
type Reference struct {
	// IsOCI reports whether the target addresses a registry. When false,
	// only LocalPath is set.
	IsOCI bool
	// Registry is the host part, like "ghcr.io" or "localhost:5000".
	Registry string
	// Repository is the path under the registry, like "nvidia/cluster-archive".
	Repository string
	// Tag is empty when the target named no tag; callers pick the default
	// (the CLI uses its own version).
	Tag string
	// LocalPath is the directory target when IsOCI is false.
	LocalPath string
}

// ParseOutputTarget interprets a push target string. Targets with the
// oci:// scheme are split into registry, repository, and optional tag
// using docker reference normalization; anything else is treated as a
// local directory path.
func ParseOutputTarget(target string) (*Reference, error) {
	if !strings.HasPrefix(target, URIScheme) {
		return &Reference{LocalPath: target}, nil
	}

	named, err := reference.ParseNormalizedNamed(strings.TrimPrefix(target, URIScheme))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid OCI reference", err)
	}

	ref := &Reference{
		IsOCI:      true,
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
	}
	if tagged, ok := named.(reference.Tagged); ok {
		ref.Tag = tagged.Tag()
	}
	return ref, nil
}

// String renders the target back in the form it was parsed from:
// "oci://registry/repository[:tag]" for registry targets, the plain
// path otherwise.
func (r *Reference) String() string {
	if !r.IsOCI {
		return r.LocalPath
	}
	return URIScheme + r.ImageReference()
}

// ImageReference returns the docker-style "registry/repository[:tag]"
// form, or an empty string for local targets.
func (r *Reference) ImageReference() string {
	if !r.IsOCI {
		return ""
	}
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// WithTag returns a copy of the reference carrying the given tag.
// Local targets come back unchanged.
func (r *Reference) WithTag(tag string) *Reference {
	if !r.IsOCI {
		return r
	}
	tagged := *r
	tagged.Tag = tag
	return &tagged
}
