package service

import (
	"errors"
	"fmt"
	"strings"
)

// Materialized paths are built from fixed-width base-36 steps, one per level.
const (
	pathAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	pathStepLen  = 4
)

var ErrPathOverflow = errors.New("no free tree path left under parent")

var maxPathStep = func() int {
	n := 1
	for i := 0; i < pathStepLen; i++ {
		n *= len(pathAlphabet)
	}
	return n - 1
}()

func encodePathStep(n int) (string, error) {
	if n < 1 || n > maxPathStep {
		return "", ErrPathOverflow
	}
	buf := make([]byte, pathStepLen)
	for i := pathStepLen - 1; i >= 0; i-- {
		buf[i] = pathAlphabet[n%len(pathAlphabet)]
		n /= len(pathAlphabet)
	}
	return string(buf), nil
}

func decodePathStep(step string) (int, error) {
	if len(step) != pathStepLen {
		return 0, fmt.Errorf("invalid path step %q", step)
	}
	n := 0
	for _, r := range step {
		idx := strings.IndexRune(pathAlphabet, r)
		if idx < 0 {
			return 0, fmt.Errorf("invalid path step %q", step)
		}
		n = n*len(pathAlphabet) + idx
	}
	return n, nil
}

// nextChildPath returns the path following lastChild under parentPath.
// An empty lastChild yields the first child slot.
func nextChildPath(parentPath, lastChild string) (string, error) {
	if lastChild == "" {
		step, err := encodePathStep(1)
		if err != nil {
			return "", err
		}
		return parentPath + step, nil
	}
	if len(lastChild) != len(parentPath)+pathStepLen || !strings.HasPrefix(lastChild, parentPath) {
		return "", fmt.Errorf("path %q is not a child of %q", lastChild, parentPath)
	}
	n, err := decodePathStep(lastChild[len(parentPath):])
	if err != nil {
		return "", err
	}
	step, err := encodePathStep(n + 1)
	if err != nil {
		return "", err
	}
	return parentPath + step, nil
}
