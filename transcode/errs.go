package transcode

import "errors"

var ErrTranscode = errors.New("transcode error")
