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

package layout

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// GlobalNamespace is the directory used for cluster-scoped objects,
	// which have no namespace of their own.
	GlobalNamespace = "_global_"

	versionFileName = "cluster-version.json"
	catalogFileName = "apis.json"
	infoFileName    = "cluster-info.txt"
	rawFileName     = "raw.json"
	eventsFileName  = "events.txt"
)

// ObjectIdentity addresses one object in the dump tree. Group is empty for
// the legacy/core API group. Namespace is empty for cluster-scoped objects.
type ObjectIdentity struct {
	Group     string
	Kind      string
	Namespace string
	Name      string
}

func (id ObjectIdentity) String() string {
	group := id.Group
	if group == "" {
		group = "core"
	}
	ns := id.Namespace
	if ns == "" {
		ns = GlobalNamespace
	}
	return fmt.Sprintf("%s/%s %s/%s", group, id.Kind, ns, id.Name)
}

// Layout computes every path written during a dump from a single root
// directory. All methods are pure: they never touch the filesystem and
// always return the same path for the same input.
type Layout struct {
	root        string
	escapeNames bool
}

// Option configures a Layout.
type Option func(*Layout)

// WithEscapedNames rewrites reserved characters in object names before they
// become directory names. See EscapeName.
func WithEscapedNames() Option {
	return func(l *Layout) {
		l.escapeNames = true
	}
}

// New creates a Layout rooted at the given directory.
func New(root string, opts ...Option) *Layout {
	l := &Layout{root: root}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Root returns the dump root directory.
func (l *Layout) Root() string {
	return l.root
}

// ClusterVersionPath is the location of the serialized server version.
func (l *Layout) ClusterVersionPath() string {
	return filepath.Join(l.root, versionFileName)
}

// CatalogPath is the location of the discovered resource catalog.
func (l *Layout) CatalogPath() string {
	return filepath.Join(l.root, catalogFileName)
}

// ClusterInfoPath is the location of the optional kubectl cluster-info text.
func (l *Layout) ClusterInfoPath() string {
	return filepath.Join(l.root, infoFileName)
}

// ObjectDir returns the directory holding everything dumped for one object:
// <root>/<namespace|_global_>/<group>/<kind>/<name>. The group segment is
// omitted for the legacy/core group so core objects sit one level higher.
func (l *Layout) ObjectDir(id ObjectIdentity) string {
	ns := id.Namespace
	if ns == "" {
		ns = GlobalNamespace
	}
	name := id.Name
	if l.escapeNames {
		name = EscapeName(name)
	}
	if id.Group == "" {
		return filepath.Join(l.root, ns, id.Kind, name)
	}
	return filepath.Join(l.root, ns, id.Group, id.Kind, name)
}

// RawPath is the location of the object's JSON representation.
func (l *Layout) RawPath(id ObjectIdentity) string {
	return filepath.Join(l.ObjectDir(id), rawFileName)
}

// ContainerLogPath is the location of one container's log capture. The
// previous flag selects the log file of the prior container instance.
func (l *Layout) ContainerLogPath(id ObjectIdentity, container string, previous bool) string {
	name := fmt.Sprintf("logs-%s.txt", container)
	if previous {
		name = fmt.Sprintf("logs-%s-prev.txt", container)
	}
	return filepath.Join(l.ObjectDir(id), name)
}

// DataPath is the location of one extracted data key of a ConfigMap or
// Secret. Keys are constrained by the API to filesystem-safe characters and
// are used verbatim.
func (l *Layout) DataPath(id ObjectIdentity, key string) string {
	return filepath.Join(l.ObjectDir(id), "data-"+key)
}

// EventsPath is the location of the correlated event log for an object.
func (l *Layout) EventsPath(id ObjectIdentity) string {
	return filepath.Join(l.ObjectDir(id), eventsFileName)
}

// EscapeName rewrites the characters '~' and ':' in an object name so the
// result is safe and unambiguous as a single path segment on common
// filesystems. The substitution is literal, '~' to "~0" and ':' to "~1",
// so distinct names always map to distinct escaped names and a name without
// either character passes through unchanged.
func EscapeName(name string) string {
	name = strings.ReplaceAll(name, "~", "~0")
	return strings.ReplaceAll(name, ":", "~1")
}
