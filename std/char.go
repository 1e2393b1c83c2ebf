package std

// Char is a rune that prints as its character under %v.
type Char rune

// String returns the character as a string.
func (c Char) String() string { return string(c) }
