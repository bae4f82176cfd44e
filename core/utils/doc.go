// Package utils converts loosely typed driver values.
//
// Raw queries scanned into maps yield different Go types per driver: sqlite
// returns int64 and string, mysql returns byte slices. The helpers here
// normalize them so callers do not switch on the driver.
package utils
