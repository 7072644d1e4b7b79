// Package causelist finds cases in court cause lists. It loads a cause list
// page from the network or from a local HTML snapshot, picks out the rows
// that mention a case (by CNR or by type, number and year) and returns
// structured matches with the serial number, court and document link.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, echo/).
package causelist
