package parser

import (
	"encoding/json"

	"github.com/oldmonad/cloudsweep/pkg/errors"
)

type JSONParser struct{}

func (p *JSONParser) Parse(content []byte) (*Settings, error) {
	var settings Settings
	if err := json.Unmarshal(content, &settings); err != nil {
		return nil, errors.ErrJSONDecodeFailure{Err: err}
	}
	settings.applyDefaults()
	return &settings, nil
}
