package facodec_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/hupe1980/facodec"
)

// Example_encode demonstrates the table-free codec: no dictionary, any
// valid annotation string compresses on its own.
func Example_encode() {
	buf, err := facodec.Encode("IPR:IPR016364;EC:1.1.1.-;IPR:IPR032635;GO:0009279;IPR:IPR008816")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(buf), "bytes")

	decoded, err := facodec.Decode(buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(decoded)
	// Output:
	// 16 bytes
	// EC:1.1.1.-;GO:0009279;IPR:IPR016364;IPR:IPR032635;IPR:IPR008816
}

// Example_dictionary demonstrates the dictionary codec: build a table from
// a corpus once, then encode each annotation as a fixed 3-byte code.
func Example_dictionary() {
	dict, err := facodec.BuildDictionary([]string{
		"EC:1.1.1.-;GO:0009279",
		"IPR:IPR016364;GO:0046872",
	})
	if err != nil {
		log.Fatal(err)
	}

	buf, err := dict.Encode("IPR:IPR016364;EC:1.1.1.-;GO:0009279")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(buf), "bytes")

	decoded, err := dict.Decode(buf)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(decoded)
	// Output:
	// 9 bytes
	// IPR:IPR016364;EC:1.1.1.-;GO:0009279
}

// Example_snapshot demonstrates sharing a dictionary between processes via
// a snapshot.
func Example_snapshot() {
	dict, err := facodec.BuildDictionary([]string{"EC:1.1.1.-;GO:0009279"})
	if err != nil {
		log.Fatal(err)
	}

	var snapshot bytes.Buffer
	if err := dict.Save(&snapshot, facodec.WithCompression(facodec.CompressionZSTD)); err != nil {
		log.Fatal(err)
	}

	loaded, err := facodec.LoadDictionary(&snapshot)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(loaded.Len(), "tokens")
	// Output: 2 tokens
}
