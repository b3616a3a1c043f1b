package textload

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadFile loads a text file as UTF-8, stripping a leading BOM. Bytes that
// are not valid UTF-8 are decoded as GB18030, matching the
// utf-8-sig/utf-8/gb18030 read order of legacy article dumps.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(data, path)
}

// Decode converts raw file bytes to a UTF-8 string. The name is used only
// in error messages.
func Decode(data []byte, name string) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := simplifiedchinese.GB18030.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", name, err)
	}
	return string(decoded), nil
}
