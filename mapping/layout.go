package mapping

import (
	"io"

	"github.com/pelletier/go-toml/v2"
)

type layoutFile struct {
	Segment []Segment `toml:"segment"`
}

// LoadLayout reads a TOML segment layout:
//
//	[[segment]]
//	column = 0
//	offset = 0
//	length = 60
//	reverse = false
//
// and builds the stride mapping it describes.
func LoadLayout(r io.Reader) (*StrideMapping, error) {
	var f layoutFile
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, err
	}
	return NewStrideMapping(f.Segment)
}
