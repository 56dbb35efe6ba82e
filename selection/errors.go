package selection

import "errors"

var (
	ErrEmptySubmission       = errors.New("selection: nothing submitted")
	ErrConflictingSelections = errors.New("selection: same answer picked for two podium places")
	ErrMarketNotInMatch      = errors.New("selection: market does not belong to the match")
	ErrMatchStarted          = errors.New("selection: match has already started")
	ErrDuplicateMarket       = errors.New("selection: market answered twice in one submission")
	ErrEmptyAnswer           = errors.New("selection: empty answer")
)
