package frame

// SerializedData is the interchange carrier for an encoded frame, mirroring
// the original library's serialized_data_info struct.
type SerializedData struct {
	Bytes  []byte
	Length int
}

// Clear releases the carrier's contents.
func (s *SerializedData) Clear() {
	if s == nil {
		return
	}
	s.Bytes = nil
	s.Length = 0
}
