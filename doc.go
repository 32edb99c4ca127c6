// Package velo implements an envelope-budgeting vault: a pool of capital
// split into named envelopes, an append-only transaction log of payments and
// income, and named archives of the whole state.
//
// The package is the single source of truth for the budgeting rules. The CLI
// in cmd/ collects user intents, the store package persists the state as
// independent blobs, and the renderer package turns state into markdown
// reports. Nothing here talks to a network.
package velo
