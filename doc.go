// Package tradebook turns per-day brokerage trade records into three views:
// a raw transaction ledger, a per-day consolidated summary, and a
// FIFO-matched position ledger with realized and open P&L.
//
// The package is a pure, in-memory computation: it consumes canonical
// trades and produces closed matches, open lots, consolidated buckets and
// portfolio snapshots. Extraction of records from broker reports and
// persistence of the results live in the ingest package and the cmd
// application.
package tradebook
