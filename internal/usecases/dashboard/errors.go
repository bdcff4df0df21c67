package dashboard

import "errors"

var (
	// ErrStaleLoad indica que uma seleção mais recente substituiu esta carga
	ErrStaleLoad     = errors.New("dashboard: load superseded by a newer selection")
	ErrInvalidBucket = errors.New("dashboard: invalid time bucket")
	ErrNoAdSelected  = errors.New("dashboard: no ad selected")
	ErrNoRowsForAd   = errors.New("dashboard: no rows for ad")
)
