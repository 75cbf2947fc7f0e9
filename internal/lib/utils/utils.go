// Package utils contains small helper functions used across the project.
//
// These are usually generic helpers that don't belong to a specific domain.
package utils

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// PrintJSON writes v to w as tab-indented JSON followed by a newline.
//
// Values json cannot encode (channels, funcs, cycles) return an error and
// nothing is written.
func PrintJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return errors.Wrap(err, "marshalling json")
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "writing json")
	}
	return nil
}
