package domain

import "strconv"

// ID identifies a stored entity. The zero value means the entity has not
// been persisted yet; the store assigns positive identifiers on insert.
type ID int64

// Assigned reports whether the identifier was assigned by the store.
func (id ID) Assigned() bool {
	return id > 0
}

// String returns the decimal form of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseID parses a decimal identifier as typed on the command line.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(n), nil
}
