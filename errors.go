package displayfmt

import "errors"

// ErrUnknownInterval indicates an interval tag outside year/quarter/month/week/day.
var ErrUnknownInterval = errors.New("displayfmt: unknown interval")

// ErrUnsupportedSettingsFormat marks settings files with an extension we cannot decode
var ErrUnsupportedSettingsFormat = errors.New("displayfmt: unsupported settings format")
