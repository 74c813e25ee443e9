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

// Package kubectl shells out to the kubectl binary for the few dump
// artifacts that have no clean API equivalent, currently the
// "cluster-info" summary text.
//
// The integration is strictly best effort. A startup probe decides once
// whether kubectl works at all; when it does not, the Runner stays usable
// but reports every result as absent, and the dump simply omits the
// corresponding files. Invocations share a small permit pool so a future
// caller issuing many commands cannot fork an unbounded number of
// processes.
package kubectl
