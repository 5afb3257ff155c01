package types

const (
	// API base URLs
	MainnetAPIURL = "https://api.hyperliquid.xyz"
	TestnetAPIURL = "https://api.hyperliquid-testnet.xyz"
	LocalAPIURL   = "http://localhost:3001"

	// Zero address used as the verifying contract of every signing domain
	ZeroAddress = "0x0000000000000000000000000000000000000000"

	// Chain names carried in user-signed actions as hyperliquidChain
	MainnetChainName = "Mainnet"
	TestnetChainName = "Testnet"

	// Agent source tags hashed into the phantom agent
	MainnetAgentSource = "a"
	TestnetAgentSource = "b"

	// DefaultSignatureChainID is the chain id (0x66eee) user-signed actions are
	// signed against when the caller does not pick one.
	DefaultSignatureChainID uint64 = 421614
)

// Order time-in-force values
const (
	TifAlo = "Alo"
	TifIoc = "Ioc"
	TifGtc = "Gtc"
)

// Trigger kinds
const (
	TpslTakeProfit = "tp"
	TpslStopLoss   = "sl"
)

// Order groupings
const (
	GroupingNa           = "na"
	GroupingNormalTpsl   = "normalTpsl"
	GroupingPositionTpsl = "positionTpsl"
)

// Decimal places used when converting floats for the wire
const (
	WireDecimals = 8
	UsdDecimals  = 6
)
