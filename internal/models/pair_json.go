package models

import (
	"encoding/json"
	"fmt"
)

func marshalPair(first, second string) ([]byte, error) {
	return json.Marshal([2]string{first, second})
}

func unmarshalPair(data []byte) (string, string, error) {
	var pair [2]string
	if err := json.Unmarshal(data, &pair); err != nil {
		return "", "", fmt.Errorf("expected [url, title] pair: %w", err)
	}
	return pair[0], pair[1], nil
}
