// Package serial implements the fixed binary SXBP wire format — a
// magic/version/count header followed by one packed direction+length
// record per segment.
package serial
