// Package minimarket provides the data-consistency core of a single-user
// inventory and point-of-sale tool for a small retail operation. It is
// designed to be local-first: all state lives in plain JSON files that can
// be inspected, backed up, and versioned by the user.
//
// The core functionalities include:
//   - Catalog Management: creating and editing product categories and
//     products, with the guard that a category cannot be deleted while
//     products still reference it.
//   - Stock Ledger: an append-only log of manual stock movements (in, out,
//     adjustment) whose effect is applied to product stock with a floor at
//     zero.
//   - Sales Register: building line-itemized sales from live product data,
//     computing totals with a fixed 18% tax, and committing each sale as an
//     immutable snapshot that decrements stock.
//   - Reporting: dashboard statistics and period reports (today, week,
//     month, year) derived from the recorded data.
//   - Data Persistence: a small Store contract over named collections,
//     backed by a directory of JSON files or by memory for tests.
//
// This package serves as the foundational logic for the `mm` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package minimarket
