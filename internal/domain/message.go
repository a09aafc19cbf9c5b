package domain

import "time"

// Message is a single framed unit cut from the byte stream.
// A message is the atomic unit handed to the receiver; it owns its bytes and
// shares no memory with the accumulation buffer it was cut from.
type Message struct {
	// Data holds the complete message bytes, terminating delimiter included.
	Data []byte

	// DelimiterLen is the length of the terminating delimiter at the end of Data.
	DelimiterLen int

	// ReceivedAt is when the message was cut from the stream.
	ReceivedAt time.Time
}

// Payload returns the message bytes without the terminating delimiter.
func (m Message) Payload() []byte {
	if m.DelimiterLen <= 0 || m.DelimiterLen > len(m.Data) {
		return m.Data
	}
	return m.Data[:len(m.Data)-m.DelimiterLen]
}

// Delimiter returns the terminating delimiter bytes at the end of Data.
func (m Message) Delimiter() []byte {
	if m.DelimiterLen <= 0 || m.DelimiterLen > len(m.Data) {
		return nil
	}
	return m.Data[len(m.Data)-m.DelimiterLen:]
}

// Len returns the total message length, delimiter included.
func (m Message) Len() int {
	return len(m.Data)
}
