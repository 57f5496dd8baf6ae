package domain

const (
	// ETHEREUM_ZERO_ADDRESS is the burn/mint counterparty address
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// FIRST_TOKEN_ID is the id of the first token issued by a collection
	FIRST_TOKEN_ID TokenID = 1

	// MAX_PHASES is the number of phases addressable by the uint8 phase index of a whitelist signature
	MAX_PHASES = 256

	// PERCENTAGE_TOTAL is the sum every withdrawal split must add up to
	PERCENTAGE_TOTAL = 100
)
