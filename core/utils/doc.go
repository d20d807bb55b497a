// Package utils provides common utility functions for the stock-audit application.
// It includes helpers for converting loosely typed spreadsheet cells into strings
// and other shared logic that doesn't fit into domain-specific packages.
package utils
