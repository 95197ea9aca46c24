package metrics

const namespace = "sim_catalog"

// Metric names
const (
	MetricNameSnapshotLoads        = "snapshot_loads_total"
	MetricNameSnapshotLoadDuration = "snapshot_load_duration_seconds"
	MetricNameSnapshotBytes        = "snapshot_bytes"
	MetricNameCatalogEntries       = "catalog_entries"
	MetricNameDuplicateIDs         = "catalog_duplicate_ids_total"
	MetricNameLookups              = "lookups_total"
	MetricNameSlotConflicts        = "slot_conflicts_total"
	MetricNameGRPCRequests         = "grpc_requests_total"
	MetricNameGRPCRequestDuration  = "grpc_request_duration_seconds"
	MetricNameHTTPRequests         = "http_requests_total"
)

// Metric help text
const (
	HelpTextSnapshotLoads        = "Total number of snapshot load attempts by result"
	HelpTextSnapshotLoadDuration = "Time spent fetching and decoding the snapshot"
	HelpTextSnapshotBytes        = "Size of the last fetched snapshot payload"
	HelpTextCatalogEntries       = "Number of entries in the loaded catalog by kind"
	HelpTextDuplicateIDs         = "Duplicate ids seen while building the catalog by kind"
	HelpTextLookups              = "Catalog operations served by operation and result"
	HelpTextSlotConflicts        = "Equipment specs rejected because an item had no free slot"
	HelpTextGRPCRequests         = "Total number of gRPC requests by method and code"
	HelpTextGRPCRequestDuration  = "gRPC request latency in seconds"
	HelpTextHTTPRequests         = "Total number of HTTP requests on the ops listener"
)

// Label names
const (
	LabelResult    = "result"
	LabelKind      = "kind"
	LabelOperation = "operation"
	LabelEncoding  = "encoding"
	LabelMethod    = "method"
	LabelCode      = "code"
	LabelPath      = "path"
	LabelStatus    = "status"
)

// Label values
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultNotFound = "not_found"
	ResultCached   = "cached"

	KindItems      = "items"
	KindEnchants   = "enchants"
	KindGems       = "gems"
	KindItemIcons  = "item_icons"
	KindSpellIcons = "spell_icons"
)

// LatencyBuckets are histogram buckets for snapshot loads and requests
var LatencyBuckets = []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
