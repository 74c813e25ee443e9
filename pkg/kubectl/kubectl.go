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

package kubectl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/semaphore"
	utilexec "k8s.io/utils/exec"

	"github.com/NVIDIA/cluster-archive/pkg/defaults"
	apperrors "github.com/NVIDIA/cluster-archive/pkg/errors"
)

// Runner invokes the kubectl binary under a fixed concurrency cap. A
// Runner is either enabled or permanently disabled: when the startup probe
// finds no working kubectl, every Exec reports absence instead of failing,
// so callers treat kubectl output as strictly optional.
type Runner struct {
	exec        utilexec.Interface
	path        string
	enabled     bool
	sem         *semaphore.Weighted
	execTimeout time.Duration
}

// New probes for a working kubectl and returns a Runner. The probe runs
// "kubectl version" once; any failure (binary missing, cluster
// unreachable) disables the integration with a diagnostic rather than
// failing the caller.
func New(ctx context.Context) *Runner {
	return newRunner(ctx, utilexec.New(), "kubectl")
}

// Disabled returns a Runner whose Exec always reports absence.
func Disabled() *Runner {
	return &Runner{
		sem:         semaphore.NewWeighted(defaults.KubectlMaxConcurrent),
		execTimeout: defaults.KubectlExecTimeout,
	}
}

func newRunner(ctx context.Context, execer utilexec.Interface, path string) *Runner {
	probeCtx, cancel := context.WithTimeout(ctx, defaults.KubectlProbeTimeout)
	defer cancel()

	cmd := execer.CommandContext(probeCtx, path, "version")
	var stderr bytes.Buffer
	cmd.SetStderr(&stderr)

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%s: %w", msg, err)
		}
		slog.Warn("kubectl integration will be disabled", "error", err)
		return Disabled()
	}

	return &Runner{
		exec:        execer,
		path:        path,
		enabled:     true,
		sem:         semaphore.NewWeighted(defaults.KubectlMaxConcurrent),
		execTimeout: defaults.KubectlExecTimeout,
	}
}

// Enabled reports whether the startup probe found a working kubectl.
func (r *Runner) Enabled() bool {
	return r.enabled
}

// Exec runs kubectl with the given arguments and returns its stdout. The
// boolean reports presence: a disabled Runner returns ("", false, nil).
// At most defaults.KubectlMaxConcurrent invocations run at once; further
// callers block until a permit frees up, and the permit is released no
// matter how the command ends. Each invocation is bounded by the exec
// timeout, and a command killed by that bound reports ErrCodeTimeout.
func (r *Runner) Exec(ctx context.Context, args ...string) (string, bool, error) {
	if !r.enabled {
		return "", false, nil
	}

	if err := r.sem.Acquire(ctx, 1); err != nil {
		return "", false, err
	}
	defer r.sem.Release(1)

	execCtx, cancel := context.WithTimeout(ctx, r.execTimeout)
	defer cancel()

	cmd := r.exec.CommandContext(execCtx, r.path, args...)
	// TERM=dumb keeps color escapes out of captured output.
	cmd.SetEnv(append(os.Environ(), "TERM=dumb"))

	var stdout, stderr bytes.Buffer
	cmd.SetStdout(&stdout)
	cmd.SetStderr(&stderr)

	invocation := "kubectl " + strings.Join(args, " ")

	if err := cmd.Run(); err != nil {
		if errors.Is(execCtx.Err(), context.DeadlineExceeded) {
			return "", false, apperrors.Wrap(apperrors.ErrCodeTimeout, invocation, execCtx.Err())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", false, fmt.Errorf("%s: %s", invocation, msg)
		}
		return "", false, fmt.Errorf("%s: %w", invocation, err)
	}

	if !utf8.Valid(stdout.Bytes()) {
		return "", false, fmt.Errorf("%s: output was not utf-8", invocation)
	}
	return stdout.String(), true, nil
}

// ClusterInfo captures "kubectl cluster-info" for the dump's optional
// cluster summary file.
func (r *Runner) ClusterInfo(ctx context.Context) (string, bool, error) {
	return r.Exec(ctx, "cluster-info")
}
