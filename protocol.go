package wsframe

// Header byte 0 bit masks, RFC 6455 Section 5.2.
const (
	b0FlagFin     = 0x80
	b0FlagRSV1    = 0x40
	b0FlagRSV2    = 0x20
	b0FlagRSV3    = 0x10
	b0FlagControl = 0x08
	b0MaskOpcode  = 0x0F
)

// Header byte 1 bit masks.
const (
	b1FlagMask   = 0x80
	b1MaskLength = 0x7F
)

// Extended payload length sentinels.
const (
	payloadLenShort = 126
	payloadLenLong  = 127
)

// maxControlPayload is the largest payload a control frame may carry.
const maxControlPayload = 125

// maskBufferSize bounds the scratch buffer used to shuttle masked
// payload bytes through toggleMask without buffering a whole frame.
const maskBufferSize = 2048
