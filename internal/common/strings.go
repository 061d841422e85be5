package common

// UnknownStr is the fallback label for enum values outside their known range.
const UnknownStr = "unknown"
