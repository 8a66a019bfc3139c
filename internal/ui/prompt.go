package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// AskYesNo writes prompt to out and reads one line from in.
// Only "y" or "yes" (case-insensitive, surrounding whitespace ignored)
// counts as confirmation; anything else, including read errors, is a no.
func AskYesNo(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)

	input, err := readLine(bufioReader(in))
	if err != nil {
		return false
	}

	switch strings.ToLower(input) {
	case "y", "yes":
		return true
	}
	return false
}

// bufioReader reuses in when it is already buffered, so consumers
// interleaving reads on the same stream don't lose typed-ahead input to a
// second buffer.
func bufioReader(in io.Reader) *bufio.Reader {
	if reader, ok := in.(*bufio.Reader); ok {
		return reader
	}
	return bufio.NewReader(in)
}

// readLine reads one line from reader and trims surrounding whitespace.
// EOF with pending text still yields that text.
func readLine(reader *bufio.Reader) (string, error) {
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
