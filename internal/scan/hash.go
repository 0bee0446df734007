package scan

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// readChunk keeps individual reads short so the context is checked often
// enough for the per-file timeout to be meaningful.
const readChunk = 1 << 20

// HashFile computes the lowercase hex SHA-256 of the file's full content.
// The context is checked between reads; cancellation or deadline expiry
// aborts the read and returns the context's error.
func HashFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, readChunk)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
