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
	"fmt"
	"log/slog"
	"slices"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// legacyVersion is the one version of the core group every supported
// cluster must serve.
const legacyVersion = "v1"

// Client is the slice of the discovery surface the catalog builder needs.
// client-go's discovery.DiscoveryInterface satisfies it.
type Client interface {
	ServerGroups() (*metav1.APIGroupList, error)
	ServerResourcesForGroupVersion(groupVersion string) (*metav1.APIResourceList, error)
}

// Discover enumerates every API group the server advertises and returns a
// descriptor for each listable, non-subresource type, named groups first
// (one preferred version per group) and the core group last.
//
// Enumeration is best effort per group: a group whose resource list cannot
// be fetched, or that advertises no versions at all, is logged and skipped.
// Discover fails outright only when the group enumeration itself fails or
// when the core group does not serve v1, since nothing useful can be
// dumped from such a cluster.
func Discover(c Client) ([]APIResource, error) {
	groups, err := c.ServerGroups()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate api groups: %w", err)
	}

	var catalog []APIResource
	var legacy *metav1.APIGroup

	for i := range groups.Groups {
		group := &groups.Groups[i]
		if group.Name == "" {
			legacy = group
			continue
		}

		version := pickVersion(group)
		if version == "" {
			slog.Warn("api group advertises no versions, skipping",
				"group", group.Name)
			continue
		}

		gv := group.Name + "/" + version
		resources, err := c.ServerResourcesForGroupVersion(gv)
		if err != nil {
			slog.Warn("failed to enumerate group resources, skipping group",
				"groupVersion", gv,
				"error", err)
			continue
		}
		catalog = append(catalog, listable(group.Name, version, resources)...)
	}

	if legacy == nil || !advertisesVersion(legacy, legacyVersion) {
		return nil, fmt.Errorf("cluster does not serve the legacy %s API", legacyVersion)
	}

	resources, err := c.ServerResourcesForGroupVersion(legacyVersion)
	if err != nil {
		slog.Warn("failed to enumerate core resources, skipping group",
			"groupVersion", legacyVersion,
			"error", err)
		return catalog, nil
	}
	return append(catalog, listable("", legacyVersion, resources)...), nil
}

// pickVersion returns the group's preferred version, or its first
// advertised version when the server states no preference. Servers return
// versions in priority order, so the first entry is the best fallback.
func pickVersion(group *metav1.APIGroup) string {
	if v := group.PreferredVersion.Version; v != "" {
		return v
	}
	if len(group.Versions) > 0 {
		return group.Versions[0].Version
	}
	return ""
}

func advertisesVersion(group *metav1.APIGroup, version string) bool {
	for _, v := range group.Versions {
		if v.Version == version {
			return true
		}
	}
	return false
}

// listable converts a discovery response into descriptors, keeping only
// types that can be enumerated. Subresources carry a slash in their name
// ("pods/status") and are never listed on their own.
func listable(group, version string, resources *metav1.APIResourceList) []APIResource {
	out := make([]APIResource, 0, len(resources.APIResources))
	for _, r := range resources.APIResources {
		if strings.Contains(r.Name, "/") {
			continue
		}
		if !slices.Contains(r.Verbs, "list") {
			continue
		}
		out = append(out, APIResource{
			Group:   group,
			Version: version,
			Kind:    r.Kind,
			Plural:  r.Name,
		})
	}
	return out
}
