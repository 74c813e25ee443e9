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

package defaults

import (
	"io/fs"
	"time"
)

// Kubernetes client settings.
const (
	// ClientQPS raises client-go's conservative default so a full-cluster
	// enumeration is not throttled on the client side.
	ClientQPS = 100

	// ClientBurst absorbs the request bursts of per-group discovery.
	ClientBurst = 300
)

// External kubectl runner settings.
const (
	// KubectlMaxConcurrent is the permit pool size for concurrent kubectl
	// invocations.
	KubectlMaxConcurrent = 3

	// KubectlProbeTimeout bounds the one-time availability probe at
	// startup. Probe failure disables the runner, it does not fail the
	// run.
	KubectlProbeTimeout = 10 * time.Second

	// KubectlExecTimeout bounds each kubectl invocation so a hung API
	// server cannot stall the dump on an optional capture.
	KubectlExecTimeout = 30 * time.Second
)

// Dump output settings.
const (
	// DirMode is the permission for created dump directories.
	DirMode fs.FileMode = 0o755

	// FileMode is the permission for written dump files.
	FileMode fs.FileMode = 0o644
)
