package gridtransport

import (
	"bytes"
	"testing"
)

func TestSerializationFormat(t *testing.T) {
	for _, compress := range []Compression{Uncompressed, Snappy, Gzip} {
		for _, checksum := range []Checksum{NoChecksum, CRC32} {
			format := EncodeSerializationFormat(compress, checksum)
			gotCompress, gotChecksum := DecodeSerializationFormat(format)
			if gotCompress != compress || gotChecksum != checksum {
				t.Errorf("Format byte round trip failed: stored (%s, %s), got (%s, %s)\n",
					compress, checksum, gotCompress, gotChecksum)
			}
		}
	}
}

func TestSerializeData(t *testing.T) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i % 7)
	}
	for _, compress := range []Compression{Uncompressed, Snappy, Gzip} {
		s, err := SerializeData(data, compress, CRC32)
		if err != nil {
			t.Fatalf("Unable to serialize with %s: %v\n", compress, err)
		}
		got, gotCompress, err := DeserializeData(s, true)
		if err != nil {
			t.Fatalf("Unable to deserialize %s data: %v\n", compress, err)
		}
		if gotCompress != compress {
			t.Errorf("Expected %s, got %s\n", compress, gotCompress)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("Data corrupted after %s round trip\n", compress)
		}
	}
}

func TestDeserializeBadChecksum(t *testing.T) {
	s, err := SerializeData([]byte("occupancy data"), Snappy, CRC32)
	if err != nil {
		t.Fatalf("Unable to serialize: %v\n", err)
	}
	s[len(s)-1] ^= 0xff
	if _, _, err := DeserializeData(s, true); err == nil {
		t.Errorf("Expected checksum failure after corrupting payload\n")
	}
}
