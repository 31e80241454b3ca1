package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LabelDecoder maps encoded class indices back to mood labels. Classes[i]
// is the label that was encoded as i.
type LabelDecoder struct {
	Classes []string `json:"classes"`
}

// LoadLabelDecoder reads a label decoder file.
func LoadLabelDecoder(path string) (*LabelDecoder, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var d LabelDecoder
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode label encoder: %w", err)
	}
	if len(d.Classes) == 0 {
		return nil, errors.New("label encoder: no classes")
	}
	return &d, nil
}

// Decode returns the label for an encoded class.
func (d *LabelDecoder) Decode(class int) (string, error) {
	if class < 0 || class >= len(d.Classes) {
		return "", fmt.Errorf("y contains previously unseen labels: [%d]", class)
	}
	return d.Classes[class], nil
}
