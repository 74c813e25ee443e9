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

// Package discovery builds the catalog of resource types a dump run will
// enumerate.
//
// The catalog is not known at build time: clusters differ by version,
// enabled feature gates, and installed CRDs, so the set of types comes
// from the discovery API at the start of every run. For each named API
// group one version is selected, preferring the server's stated preference
// and falling back to the highest-priority advertised version. The
// legacy/core group is handled separately and must serve v1; everything
// else is best effort, and a group that fails to enumerate shrinks the
// catalog instead of failing the run.
//
// Each catalog entry records the group, version, kind, and the plural path
// segment exactly as the server advertised it. The plural is never derived
// by pluralization once a type has been discovered; ForKind's naive
// lowercase-plus-s convention exists only to name a few well-known
// built-in types in code.
package discovery
