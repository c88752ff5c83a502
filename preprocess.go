package csyntax

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"unicode/utf8"
)

// preprocess runs the configured preprocessor over the file at path
// and returns its standard output. On a non-zero exit the captured
// stderr text becomes the error; stderr or stdout that is not valid
// UTF-8 is reported as such rather than passed through.
func preprocess(ctx context.Context, cfg Config, path string) (string, error) {
	args := make([]string, 0, len(cfg.CPPOptions)+1)
	args = append(args, cfg.CPPOptions...)
	args = append(args, path)

	cmd := exec.CommandContext(ctx, cfg.CPPCommand, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The command never ran (not found, permission, canceled).
			return "", err
		}
		msg := stderr.String()
		switch {
		case !utf8.ValidString(msg):
			return "", errors.New("cpp error contains invalid utf-8")
		case msg == "":
			return "", err
		default:
			return "", errors.New(msg)
		}
	}

	out := stdout.String()
	if !utf8.ValidString(out) {
		return "", errors.New("cpp output contains invalid utf-8")
	}
	return out, nil
}
