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

// Package defaults provides centralized configuration constants for the
// dump pipeline.
//
// The pipeline itself applies no per-call timeouts; a run either completes
// or stops on a fatal error. The constants here configure the edges of the
// system instead: the client-go rate limits that a full-cluster enumeration
// would otherwise trip over, the bounds of the external kubectl runner, and
// the permissions of everything written under the dump root.
//
// Import and use constants directly:
//
//	import "github.com/NVIDIA/cluster-archive/pkg/defaults"
//
//	config.QPS = defaults.ClientQPS
//	config.Burst = defaults.ClientBurst
package defaults
