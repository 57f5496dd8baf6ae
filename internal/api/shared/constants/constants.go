package constants

const (
	MAX_TOKEN_IDS_PER_REQUEST  = 100
	MAX_SIGNATURES_PER_REQUEST = 500
	MAX_WITHDRAW_SHARES        = 50
	MAX_EVENTS_PAGE_SIZE       = 500
	DEFAULT_EVENTS_LIMIT       = 50
	DEFAULT_OFFSET             = uint64(0)
)
