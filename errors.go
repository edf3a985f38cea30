package bytelayout

import "errors"

var (
	// ErrZeroValue indicates a nonzero integer field held the all-zero byte pattern.
	ErrZeroValue = errors.New("bytelayout: zero value in nonzero field")
	// ErrInvalidBool indicates a boolean field held a byte other than 0 or 1.
	ErrInvalidBool = errors.New("bytelayout: invalid boolean byte")
	// ErrInvalidCodepoint indicates a char field held a value that is not a Unicode scalar.
	ErrInvalidCodepoint = errors.New("bytelayout: invalid unicode code point")
	// ErrOpenEndedNotLast indicates a field with unbounded size was not the layout's last field.
	ErrOpenEndedNotLast = errors.New("bytelayout: open-ended field must be last")
	// ErrDuplicateField indicates two fields in a layout share a name.
	ErrDuplicateField = errors.New("bytelayout: duplicate field name")
	// ErrRange indicates a subregion request that exceeds the available window.
	ErrRange = errors.New("bytelayout: subregion out of range")
	// ErrReadOnly indicates a mutation was attempted through read-only storage.
	ErrReadOnly = errors.New("bytelayout: storage is read-only")
	// ErrNotOwned indicates an ownership-consuming operation on borrowed storage.
	ErrNotOwned = errors.New("bytelayout: storage is not owned")
	// ErrStringTooLong indicates an encoded string does not fit its field.
	ErrStringTooLong = errors.New("bytelayout: encoded string exceeds field size")
)
