package thresholding

import "errors"

var ErrInvalidBound = errors.New("invalid threshold bound")
