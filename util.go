package sax

// copyAttributes returns a copy of attrs that stays valid after the event.
func copyAttributes(attrs Attributes) Attributes {
	dst := make(Attributes, len(attrs))
	for k, v := range attrs {
		dst[k] = v
	}
	return dst
}
