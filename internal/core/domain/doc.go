// Package domain defines the coded errors shared by the ordmap tools.
//
// Every failure a user can see carries a stable code of the form
// OM-<AREA>-<NNNN>. Errors compare equal under errors.Is when their codes
// match, so callers test against the sentinels:
//
//	if errors.Is(err, domain.ErrKeyNotFound) { ... }
package domain
