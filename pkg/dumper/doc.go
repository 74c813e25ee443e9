// Package dumper walks a discovered resource catalog and writes every
// object in the cluster to an archive tree on disk.
//
// # Overview
//
// The dumper package is the core of the archive pipeline. It takes the
// catalog produced by pkg/discovery and, for each resource type, lists all
// objects across all namespaces through the dynamic client, strips
// configured fields, and writes each object as pretty-printed JSON into
// the tree defined by pkg/layout. Selected kinds get extra sidecar files
// (container logs, config data), and a final pass correlates cluster
// events to the objects they refer to.
//
// # Core Types
//
// Dumper: the pipeline with its injected dependencies
//
//	type Dumper struct {
//	    Clientset kubernetes.Interface   // typed calls: logs, events
//	    Dynamic   dynamic.Interface      // per-type list calls
//	    Layout    *layout.Layout         // archive paths
//	    Version   *version.Info          // written to cluster-version.json
//	    Catalog   []discovery.APIResource // dump order
//	    Strips    strip.Strips           // applied before writing
//	    Logs      LogSource              // optional log source override
//	    Limiter   *rate.Limiter          // optional list pacing
//	}
//
// Summary: what one run captured
//
//	type Summary struct {
//	    RunID         string
//	    Cluster       ClusterInfo
//	    TypesDumped   int
//	    ObjectsDumped int
//	    ...
//	}
//
// Enricher: kind-specific sidecar files
//
//	type Enricher interface {
//	    Enrich(ctx context.Context, d *Dumper, id layout.ObjectIdentity, obj *unstructured.Unstructured) error
//	}
//
// # Usage
//
//	strips, err := strip.Parse([]string{"managed-fields"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	d := &dumper.Dumper{
//	    Clientset: clientset,
//	    Dynamic:   dynamicClient,
//	    Layout:    layout.New("./archive"),
//	    Version:   serverVersion,
//	    Catalog:   catalog,
//	    Strips:    strips,
//	}
//
//	sum, err := d.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("archived %d objects\n", sum.ObjectsDumped)
//
// # Archive Structure
//
// A run produces a tree like:
//
//	archive/
//	  cluster-version.json
//	  apis.json
//	  default/
//	    Pod/
//	      web-0/
//	        raw.json
//	        logs-app.txt
//	        events.txt
//	    ConfigMap/
//	      cfg/
//	        raw.json
//	        data-app.yaml
//	  _global_/
//	    rbac.authorization.k8s.io/
//	      ClusterRole/
//	        admin/
//	          raw.json
//
// # Enrichment
//
// Enrichers run per object, right after its raw file is written:
//   - Pod: current and previous logs per container, timestamps on
//   - ConfigMap, Secret: one file per data entry, bytes as received
//
// Kinds without an enricher get a no-op. Missing enrichment material
// (no previous logs, empty data) is normal and leaves no file.
//
// # Error Handling
//
// Failures split three ways:
//   - a failed type list skips that type and counts it in the summary
//   - absent logs and unreadable data fields are logged and skipped
//   - any serialization or filesystem write error aborts the run
//
// API-side failures affect one type or one sidecar and degrade
// coverage; a write failure means the archive itself cannot be
// trusted, so the run stops.
//
// # Event Correlation
//
// After all types are dumped, events are listed once and grouped by the
// object they refer to. Each group's messages are joined with newlines
// and written as events.txt in that object's directory. Events without a
// kind or name are dropped; groups whose object has no raw.json on disk
// are skipped. Both outcomes are logged and counted.
//
// # Observability
//
// The dumper exports Prometheus metrics:
//   - ichnos_dump_duration_seconds: full run duration
//   - ichnos_dump_objects_total{kind}: objects written
//   - ichnos_dump_type_failures_total: types skipped after a failed list
//   - ichnos_dump_log_fetches_total{status}: log fetch outcomes
//   - ichnos_dump_event_groups_total{status}: event group outcomes
//
// # Integration
//
// The dumper is invoked by:
//   - pkg/cli - dump command
//
// It depends on:
//   - pkg/discovery - resource catalog
//   - pkg/layout - archive paths
//   - pkg/strip - field removal
package dumper
