package envelope_test

import (
	"bytes"
	"fmt"

	"github.com/arloliu/base254/envelope"
	"github.com/arloliu/base254/format"
)

func ExamplePack() {
	data := bytes.Repeat([]byte{0x00, 0x01, 0x02, 0x03}, 256)

	packed, err := envelope.Pack(data, envelope.WithCompression(format.CompressionS2))
	if err != nil {
		panic(err)
	}

	unpacked, err := envelope.Unpack(packed)
	if err != nil {
		panic(err)
	}

	fmt.Println(bytes.Equal(data, unpacked), len(packed) < len(data))

	// Output:
	// true true
}
