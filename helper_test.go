package bankbook

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// at is a helper for tests to parse a timestamp from const
func at(s string) Timestamp { return MustParseTimestamp(s) }
