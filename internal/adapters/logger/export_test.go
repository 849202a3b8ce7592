// export_test.go exports private functions for white-box testing.
package logger

// CollectErrorMessages returns the message of each entry collectErrorEntries finds.
func CollectErrorMessages(err error) []string {
	entries := collectErrorEntries(err)
	msgs := make([]string, len(entries))
	for i, e := range entries {
		msgs[i] = e.message
	}
	return msgs
}

// CollectErrorMetadata returns the metadata of each entry collectErrorEntries finds.
func CollectErrorMetadata(err error) []map[string]any {
	entries := collectErrorEntries(err)
	md := make([]map[string]any, len(entries))
	for i, e := range entries {
		md[i] = e.metadata
	}
	return md
}
