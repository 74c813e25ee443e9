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
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	utilexec "k8s.io/utils/exec"

	apperrors "github.com/NVIDIA/cluster-archive/pkg/errors"
)

// fakeKubectl writes a stand-in kubectl script so runner behavior can be
// tested without the real binary or a cluster.
func fakeKubectl(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kubectl")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

const workingScript = `case "$1" in
version)
	echo "Client Version: v1.31.0"
	;;
cluster-info)
	echo "Kubernetes control plane is running at https://127.0.0.1:6443"
	;;
fail)
	echo "the server could not find the requested resource" >&2
	exit 1
	;;
binary)
	printf '\377\376'
	;;
slow)
	sleep 0.25
	echo done
	;;
*)
	echo "$@"
	;;
esac
`

func TestRunner_Exec(t *testing.T) {
	r := newRunner(context.Background(), utilexec.New(), fakeKubectl(t, workingScript))
	require.True(t, r.Enabled())

	out, ok, err := r.ClusterInfo(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out, "control plane is running")
}

func TestRunner_ExecFailureCarriesStderr(t *testing.T) {
	r := newRunner(context.Background(), utilexec.New(), fakeKubectl(t, workingScript))

	_, ok, err := r.Exec(context.Background(), "fail")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "could not find the requested resource")
}

func TestRunner_ExecRejectsNonUTF8(t *testing.T) {
	r := newRunner(context.Background(), utilexec.New(), fakeKubectl(t, workingScript))

	_, _, err := r.Exec(context.Background(), "binary")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "utf-8")
}

func TestRunner_ProbeFailureDisables(t *testing.T) {
	r := newRunner(context.Background(), utilexec.New(), fakeKubectl(t, `exit 1`))
	assert.False(t, r.Enabled())

	out, ok, err := r.Exec(context.Background(), "cluster-info")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestRunner_MissingBinaryDisables(t *testing.T) {
	r := newRunner(context.Background(), utilexec.New(), filepath.Join(t.TempDir(), "no-such-kubectl"))
	assert.False(t, r.Enabled())
}

func TestDisabled(t *testing.T) {
	r := Disabled()
	assert.False(t, r.Enabled())

	out, ok, err := r.ClusterInfo(context.Background())
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, out)
}

func TestRunner_ExecTimeoutClassified(t *testing.T) {
	r := newRunner(context.Background(), utilexec.New(), fakeKubectl(t, workingScript))
	require.True(t, r.Enabled())
	r.execTimeout = 50 * time.Millisecond

	_, ok, err := r.Exec(context.Background(), "slow")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Equal(t, apperrors.ErrCodeTimeout, apperrors.CodeOf(err))
}

func TestRunner_ExecHonorsCanceledContext(t *testing.T) {
	r := newRunner(context.Background(), utilexec.New(), fakeKubectl(t, workingScript))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := r.Exec(ctx, "cluster-info")
	assert.Error(t, err)
}

func TestRunner_ConcurrencyCap(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing test in short mode")
	}

	r := newRunner(context.Background(), utilexec.New(), fakeKubectl(t, workingScript))
	require.True(t, r.Enabled())

	// Six invocations of a 250ms command under a cap of three need at
	// least two batches.
	const calls = 6
	start := time.Now()

	var wg sync.WaitGroup
	errs := make([]error, calls)
	for i := range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, errs[i] = r.Exec(context.Background(), "slow")
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 450*time.Millisecond,
		"six slow calls should not fit in one batch of three")
}
