package strategy

import _ "embed"

//go:embed data/strategy.json
var defaultData []byte

// LoadDefault loads the strategy data set shipped with the binary.
func LoadDefault() (*Tables, error) {
	return Load(defaultData)
}
