package table

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// Record is one row. Rows need not share a shape; missing fields read as nil.
type Record = map[string]any

// FromStructs flattens items into records keyed by their json field names.
// Embedded structs are squashed into the parent record.
func FromStructs[T any](items []T) ([]Record, error) {
	out := make([]Record, 0, len(items))
	for i, item := range items {
		rec := Record{}
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName: "json",
			Squash:  true,
			Result:  &rec,
		})
		if err != nil {
			return nil, errors.Wrap(err, "mapstructure.NewDecoder")
		}
		if err := dec.Decode(item); err != nil {
			return nil, errors.Wrapf(err, "flatten row %d", i)
		}
		out = append(out, rec)
	}

	return out, nil
}
