// Package feed loads the vendor inventory feed: a zip-compressed Excel
// workbook (legacy .xls or OOXML .xlsx) fetched over HTTP or from an
// S3-compatible bucket, parsed into the rows the reconciliation core
// consumes.
package feed
