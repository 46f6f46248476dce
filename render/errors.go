package render

import "errors"

// ErrUnknownFormat indicates a format name other than table, html or json.
var ErrUnknownFormat = errors.New("render: unknown format")
