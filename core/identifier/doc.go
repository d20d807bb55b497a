// Package identifier canonicalizes scanned or typed serial numbers.
//
// Every value that enters the reconciliation engine, from the decoder, from
// manual entry or from a manifest cell, passes through Normalize first, so
// "abc123 " and "ABC123" are the same identifier.
package identifier
