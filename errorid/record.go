// Package errorid extracts the error-message definitions (the `ErrorId` records) from the Perforce C++ message
// sources, like msgs/msgdm.cc.
//
// A definition looks like:
//
//	ErrorId MsgDm::BadCharSet = { ErrorOf( ES_DM, 1, E_FAILED, EV_USAGE, 0 ), "Invalid character set." } ;
//
// Use Scan (or NewScanner for one record at a time) to parse a source, and SortByCode to order the records.
package errorid

import (
	"cmp"
	"fmt"
	"slices"
)

// Record is one parsed error-message definition. It is not changed after the scanner creates it.
type Record struct {
	// Name of the ErrorId, without the class qualifier: "BadCharSet" for "MsgDm::BadCharSet".
	Name string

	// Subsystem, Severity and Generic are the symbolic tokens given to ErrorOf, e.g.: "ES_DM", "E_FAILED", "EV_USAGE".
	Subsystem, Severity, Generic string

	// Code is the numeric message code. Not necessarily unique.
	Code int

	// ArgCount is the number of arguments of the message, as written in the source.
	ArgCount string

	// Text of the message, as written in the source: escape sequences are not interpreted.
	Text string

	// Line where the definition ended in the source, for diagnostics.
	Line int
}

// String implements fmt.Stringer.
func (r Record) String() string {
	return fmt.Sprintf("%s=%d (%s, %s, %s, args=%s)", r.Name, r.Code, r.Subsystem, r.Severity, r.Generic, r.ArgCount)
}

// SortByCode sorts the records in place by Code, in ascending order.
// The sort is stable: records with the same code keep their relative order.
func SortByCode(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(a.Code, b.Code)
	})
}
