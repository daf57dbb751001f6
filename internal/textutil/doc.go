// Package textutil provides text helpers for sheet cells and path segments.
//
// The primary use cases are:
//   - Normalizing sheet text to NFC so Hangul titles compare and render
//     consistently regardless of the authoring platform
//   - Case folding for selector matching
//   - Sanitizing course codes before they become directory names
package textutil
