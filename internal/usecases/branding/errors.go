package branding

import "errors"

var ErrImageRequired = errors.New("no brand image uploaded")
