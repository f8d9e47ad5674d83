/*
Package observability exposes Prometheus metrics for external tool invocations.

Metrics are fed by process.Hooks, so any runner built with them reports
invocation counts by outcome and wall-clock duration per tool.
*/
package observability
