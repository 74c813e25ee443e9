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

package discovery

import (
	"strings"

	"k8s.io/apimachinery/pkg/runtime/schema"
)

// APIResource identifies one listable resource type exposed by the
// cluster. Group is empty for the legacy/core group. Plural is the path
// segment the server itself advertised for list requests and is used
// verbatim, never re-derived.
type APIResource struct {
	Group   string `json:"group"`
	Version string `json:"version"`
	Kind    string `json:"kind"`
	Plural  string `json:"plural"`
}

// Core reports whether the resource belongs to the legacy/core group.
func (r APIResource) Core() bool {
	return r.Group == ""
}

// GroupVersion returns the request-path form of the type's group and
// version: "apps/v1" for grouped types, "v1" for core types.
func (r APIResource) GroupVersion() string {
	if r.Core() {
		return r.Version
	}
	return r.Group + "/" + r.Version
}

// GroupVersionResource returns the dynamic-client coordinates of the type.
func (r APIResource) GroupVersionResource() schema.GroupVersionResource {
	return schema.GroupVersionResource{
		Group:    r.Group,
		Version:  r.Version,
		Resource: r.Plural,
	}
}

// ForKind builds a descriptor for a statically known built-in type without
// a discovery pass, deriving the plural as lowercase kind + "s". The
// convention is known to be wrong for irregular plurals, so it is only a
// bootstrap convenience for the handful of core types named in code;
// dynamically discovered types always carry the server's own plural.
func ForKind(group, version, kind string) APIResource {
	return APIResource{
		Group:   group,
		Version: version,
		Kind:    kind,
		Plural:  strings.ToLower(kind) + "s",
	}
}
