package invoice

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the pixel size of every encoded reference code.
const qrSize = 256

// EncodePayload encodes a text payload into a PNG image. The output is
// deterministic per payload.
func EncodePayload(payload string) ([]byte, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, qrSize)
	if err != nil {
		return nil, fmt.Errorf("invoice: encode payload: %w", err)
	}
	return png, nil
}
