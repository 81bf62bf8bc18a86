// Package folionews turns a broker holdings export into a portfolio news
// dashboard: for every holding it gathers recent news, keeps only the
// articles actually about the company, and scores each one from an
// investor's perspective.
//
// The core functionalities include:
//   - Holdings Import: Reading the broker CSV export (symbol, quantity,
//     average price) that defines which companies to follow.
//   - News Pipeline: Expanding a company profile into search phrases,
//     fetching candidate articles per phrase, deduplicating them by URL,
//     filtering out coincidental matches, and attaching a sentiment score
//     in [-1, 1] to each kept article.
//   - Freshness Cache: Persisting the scored article lists per symbol in a
//     human-readable JSONL file, so repeated dashboard runs within the
//     freshness window cost nothing, and a failing refresh can fall back
//     to a stale but present entry.
//   - Price Statistics: Deriving last price and day/week/month changes from
//     a month of daily closes, plus basic valuation ratios.
//
// This package serves as the foundational logic for the `folionews`
// command-line tool; the oracle, brave and yfin subpackages plug the live
// providers into its interfaces.
package folionews
