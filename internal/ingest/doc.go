// Package ingest runs the HTTP endpoint that pushes metric batches into the
// dashboard.
//
// POST /data takes {"server_data":[{"cpu":..,"ram":..,"netspeed":[up,down]}]}.
// A valid body becomes one monitor.Batch handed to the sink as a whole and is
// answered with 202 and the batch id. Invalid bodies get 400, throttled
// requests 429. GET /metrics serves Prometheus counters and GET /healthz
// reports liveness.
package ingest
