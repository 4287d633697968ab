package locale

// DefaultProfiles is the built-in signal table. Row order follows the
// Raspberry Pi keyboard SKU numbering: the official keyboard embeds its
// regional variant number in the USB product string, and that number
// indexes this table. The Apple tag column matches the language tags the
// Apple "previous language" EFI variable stores; the Japanese row has no
// tag because JIS-keyboard Macs report a composite value this tool does
// not parse.
func DefaultProfiles() []Profile {
	return []Profile{
		{Country: "GB", Language: "en", Timezone: "Europe/London", AppleTag: "en-GB"},
		{Country: "FR", Language: "fr", Timezone: "Europe/Paris", AppleTag: "fr"},
		{Country: "DE", Language: "de", Timezone: "Europe/Berlin", AppleTag: "de"},
		{Country: "IT", Language: "it", Timezone: "Europe/Rome", AppleTag: "it"},
		{Country: "US", Language: "en", Timezone: "America/New_York", AppleTag: "en"},
		{Country: "ES", Language: "es", Timezone: "Europe/Madrid", AppleTag: "es"},
		{Country: "PT", Language: "pt", Timezone: "Europe/Lisbon", AppleTag: "pt"},
		{Country: "SE", Language: "sv", Timezone: "Europe/Stockholm", AppleTag: "sv"},
		{Country: "NO", Language: "nb", Timezone: "Europe/Oslo", AppleTag: "nb"},
		{Country: "DK", Language: "da", Timezone: "Europe/Copenhagen", AppleTag: "da"},
		{Country: "JP", Language: "ja", Timezone: "Asia/Tokyo"},
	}
}

// DefaultTable builds a table from the built-in profiles. The built-in
// rows are known to be valid, so a construction failure is a programming
// error and panics.
func DefaultTable() *Table {
	t, err := NewTable(DefaultProfiles())
	if err != nil {
		panic(err)
	}

	return t
}
