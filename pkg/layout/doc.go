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

// Package layout maps cluster objects to filesystem paths inside a dump
// directory.
//
// The mapping is deterministic and collision-free: two objects share a path
// only if they share the full (group, kind, namespace, name) identity, in
// which case they are the same object and the later write wins. Writers
// therefore never need to coordinate with each other.
//
// The produced tree is browsable by hand:
//
//	<root>/cluster-version.json
//	<root>/apis.json
//	<root>/cluster-info.txt
//	<root>/<namespace|_global_>/<group>/<kind>/<name>/raw.json
//	<root>/.../logs-<container>.txt
//	<root>/.../logs-<container>-prev.txt
//	<root>/.../data-<key>
//	<root>/.../events.txt
//
// Cluster-scoped objects are filed under the "_global_" namespace
// directory, and objects of the legacy/core API group skip the group
// segment entirely, so a Pod lands in <root>/<ns>/Pod/<name> while a
// Deployment lands in <root>/<ns>/apps/Deployment/<name>.
//
// Object names may contain characters that are legal in the API but
// awkward on filesystems. With WithEscapedNames enabled, '~' and ':' in
// the name segment are replaced by the literal sequences "~0" and "~1".
// Only the name segment is rewritten; namespace, group, and kind are
// already constrained to safe identifiers by the API.
package layout
