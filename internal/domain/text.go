package domain

// MaxTextLength is the largest title, description or task text that fits the
// 255-byte persisted field once its NUL terminator is accounted for.
const MaxTextLength = 254

// TextFieldSize is the width of every persisted text field.
const TextFieldSize = MaxTextLength + 1
