package dumper

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/time/rate"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	k8sversion "k8s.io/apimachinery/pkg/version"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"

	"github.com/NVIDIA/cluster-archive/pkg/defaults"
	"github.com/NVIDIA/cluster-archive/pkg/discovery"
	"github.com/NVIDIA/cluster-archive/pkg/layout"
	"github.com/NVIDIA/cluster-archive/pkg/strip"
)

// Dumper walks a discovered resource catalog and writes the archive tree.
// All fields except Logs and Limiter are required. The pipeline is strictly
// sequential: types in catalog order, objects in list order, enrichment for
// one object before the next, event correlation last.
type Dumper struct {
	// Clientset serves typed calls (pod logs, events).
	Clientset kubernetes.Interface

	// Dynamic serves the per-type list calls.
	Dynamic dynamic.Interface

	// Layout maps object identities to paths under the archive root.
	Layout *layout.Layout

	// Version is the server version written to cluster-version.json.
	Version *k8sversion.Info

	// Catalog is the discovered resource catalog, written to apis.json and
	// dumped in order.
	Catalog []discovery.APIResource

	// Strips are applied to every object representation before writing.
	Strips strip.Strips

	// Logs overrides the container log source. Nil means fetch through
	// Clientset.
	Logs LogSource

	// Limiter paces list calls when set. Nil means no pacing.
	Limiter *rate.Limiter

	sum *Summary
}

// Run executes the full dump pass and reports what was captured.
// Type-level list failures degrade coverage and are only counted; an error
// return means the run is unusable (broken output filesystem or canceled
// context) and the archive should not be trusted.
func (d *Dumper) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	defer func() {
		dumpDuration.Observe(time.Since(start).Seconds())
	}()

	d.sum = newSummary(d.Version)
	d.sum.TypesDiscovered = len(d.Catalog)

	if err := d.writeClusterFiles(); err != nil {
		return nil, err
	}

	for _, res := range d.Catalog {
		if err := d.dumpType(ctx, res); err != nil {
			return nil, err
		}
	}

	if err := d.correlateEvents(ctx); err != nil {
		return nil, err
	}

	d.sum.DurationSeconds = time.Since(start).Seconds()
	return d.sum, nil
}

// writeClusterFiles writes cluster-version.json and apis.json at the
// archive root, creating the root first.
func (d *Dumper) writeClusterFiles() error {
	if err := os.MkdirAll(d.Layout.Root(), defaults.DirMode); err != nil {
		return fmt.Errorf("failed to create archive root: %w", err)
	}

	if d.Version != nil {
		data, err := json.MarshalIndent(d.Version, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize cluster version: %w", err)
		}
		if err := os.WriteFile(d.Layout.ClusterVersionPath(), data, defaults.FileMode); err != nil {
			return fmt.Errorf("failed to write cluster version: %w", err)
		}
	}

	data, err := json.MarshalIndent(d.Catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize resource catalog: %w", err)
	}
	if err := os.WriteFile(d.Layout.CatalogPath(), data, defaults.FileMode); err != nil {
		return fmt.Errorf("failed to write resource catalog: %w", err)
	}
	return nil
}

// dumpType lists one resource type across all namespaces and writes every
// returned object. A failed list call skips the type; permissions commonly
// vary per type and partial coverage is expected.
func (d *Dumper) dumpType(ctx context.Context, res discovery.APIResource) error {
	if err := d.pace(ctx); err != nil {
		return err
	}

	list, err := d.Dynamic.Resource(res.GroupVersionResource()).List(ctx, metav1.ListOptions{})
	if err != nil {
		slog.Warn("failed to list resource type, skipping",
			"groupVersion", res.GroupVersion(),
			"plural", res.Plural,
			"error", err)
		dumpTypeFailures.Inc()
		d.sum.TypesFailed++
		return nil
	}

	slog.Debug("dumping resource type",
		"groupVersion", res.GroupVersion(),
		"plural", res.Plural,
		"objects", len(list.Items))

	for i := range list.Items {
		if err := d.dumpObject(ctx, res, &list.Items[i]); err != nil {
			return err
		}
	}
	d.sum.TypesDumped++
	return nil
}

// dumpObject writes one object's stripped representation and runs its
// kind's enricher. Serialization and write errors abort the run: every
// object targets the same filesystem, so one broken write means all
// subsequent ones are suspect too.
func (d *Dumper) dumpObject(ctx context.Context, res discovery.APIResource, obj *unstructured.Unstructured) error {
	id := layout.ObjectIdentity{
		Group:     res.Group,
		Kind:      res.Kind,
		Namespace: obj.GetNamespace(),
		Name:      obj.GetName(),
	}

	content := obj.UnstructuredContent()
	d.Strips.Apply(content)

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", id, err)
	}
	if err := os.MkdirAll(d.Layout.ObjectDir(id), defaults.DirMode); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", id, err)
	}
	if err := os.WriteFile(d.Layout.RawPath(id), data, defaults.FileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", id, err)
	}
	d.sum.ObjectsDumped++
	dumpObjectsTotal.WithLabelValues(res.Kind).Inc()

	return enricherFor(res.Kind).Enrich(ctx, d, id, obj)
}

// pace blocks until the limiter grants a permit, when pacing is enabled.
func (d *Dumper) pace(ctx context.Context) error {
	if d.Limiter == nil {
		return nil
	}
	return d.Limiter.Wait(ctx)
}
