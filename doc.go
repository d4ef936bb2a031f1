// Package loanbook provides the types and functions for tracking personal
// loans and savings, and for deriving financial state from a small set of
// user-entered facts. It is designed to be local-first and auditable: the
// stored records stay small, and every derived value (outstanding balances,
// EMI schedules, interest projections, prioritized suggestions) is recomputed
// on demand from the records and an explicit "as of" date.
//
// The core functionalities include:
//   - Loan Records: Storing a loan's static terms (principal, rate, tenure,
//     start date), its part-payment history, and an optional custom EMI
//     override.
//   - Amortization Engine: Pure functions computing the standard annuity
//     payment, counting scheduled payments that have fallen due, and walking
//     a balance forward month by month.
//   - Snapshots: A stateless calculator that resolves every loan's live
//     state at a given date, aggregates portfolio totals, projects future
//     payments, and generates prioritized suggestions.
//   - Data Persistence: Encoding and decoding the whole book to and from a
//     human-readable, version-stamped JSON document.
//
// This package serves as the foundational logic for the `lbk` command-line
// tool. All computations take the current date as an explicit parameter, so
// they are fully deterministic and testable.
package loanbook
