package registry

// Builtins returns the built-in mask definitions.
func Builtins() []Definition {
	return []Definition{
		{
			Name:        "phone-us",
			Pattern:     "(000) 000-0000",
			Description: "North American phone number",
		},
		{
			Name:        "zip-us",
			Pattern:     "00000-9999",
			Description: "US ZIP code with optional plus-four",
		},
		{
			Name:        "ssn",
			Pattern:     "000-00-0000",
			Description: "US Social Security number",
		},
		{
			Name:        "date-iso",
			Pattern:     "0000-00-00",
			Description: "ISO 8601 calendar date",
		},
		{
			Name:        "time-24h",
			Pattern:     "00:00",
			Description: "24-hour clock time",
		},
		{
			Name:        "serial",
			Pattern:     "LLLL-0000",
			Description: "Four uppercase letters and four digits",
		},
	}
}
