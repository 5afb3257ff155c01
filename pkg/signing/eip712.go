package signing

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/pooofdevelopment/go-hl-client/pkg/types"
)

// Signing domains
const (
	AGENT_DOMAIN_NAME = "Exchange"
	AGENT_VERSION     = "1"
	AGENT_CHAIN_ID    = 1337

	USER_SIGNED_DOMAIN_NAME = "HyperliquidSignTransaction"
	USER_SIGNED_VERSION     = "1"

	AGENT_TYPE = "Agent(string source,bytes32 connectionId)"
	// keccak256 input of the domain type shared by both domains
	DOMAIN_TYPE = "EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"
)

// EIP712Domain represents the domain separator for EIP712
type EIP712Domain struct {
	Name              string
	Version           string
	ChainID           *big.Int
	VerifyingContract common.Address
}

// AgentDomain is the fixed domain of the phantom agent.
func AgentDomain() EIP712Domain {
	return EIP712Domain{
		Name:              AGENT_DOMAIN_NAME,
		Version:           AGENT_VERSION,
		ChainID:           big.NewInt(AGENT_CHAIN_ID),
		VerifyingContract: common.HexToAddress(types.ZeroAddress),
	}
}

// UserSignedDomain is the domain of user-signed actions for the given chain id.
func UserSignedDomain(chainID uint64) EIP712Domain {
	return EIP712Domain{
		Name:              USER_SIGNED_DOMAIN_NAME,
		Version:           USER_SIGNED_VERSION,
		ChainID:           new(big.Int).SetUint64(chainID),
		VerifyingContract: common.HexToAddress(types.ZeroAddress),
	}
}

// Agent is the phantom agent whose signature authorizes a hash-based action.
type Agent struct {
	Source       string
	ConnectionID common.Hash
}

// NewAgent builds the phantom agent of a connection id for a network.
func NewAgent(connectionID common.Hash, network types.Network) Agent {
	return Agent{Source: network.AgentSource(), ConnectionID: connectionID}
}

// AgentSigningHash is the digest signed for a hash-based action.
func AgentSigningHash(connectionID common.Hash, network types.Network) common.Hash {
	agent := NewAgent(connectionID, network)
	return Digest(buildDomainSeparatorHash(AgentDomain()), buildAgentHash(agent))
}

// Digest combines a domain separator and a struct hash according to EIP-712.
func Digest(domainSeparator, structHash common.Hash) common.Hash {
	return crypto.Keccak256Hash([]byte("\x19\x01"), domainSeparator.Bytes(), structHash.Bytes())
}

func buildDomainSeparatorHash(domain EIP712Domain) common.Hash {
	typeHash := crypto.Keccak256Hash([]byte(DOMAIN_TYPE))
	nameHash := crypto.Keccak256Hash([]byte(domain.Name))
	versionHash := crypto.Keccak256Hash([]byte(domain.Version))

	encoded := make([]byte, 0, 160)
	encoded = append(encoded, typeHash.Bytes()...)
	encoded = append(encoded, nameHash.Bytes()...)
	encoded = append(encoded, versionHash.Bytes()...)
	encoded = append(encoded, common.LeftPadBytes(domain.ChainID.Bytes(), 32)...)
	encoded = append(encoded, common.LeftPadBytes(domain.VerifyingContract.Bytes(), 32)...)

	return crypto.Keccak256Hash(encoded)
}

func buildAgentHash(agent Agent) common.Hash {
	typeHash := crypto.Keccak256Hash([]byte(AGENT_TYPE))
	sourceHash := crypto.Keccak256Hash([]byte(agent.Source))

	encoded := make([]byte, 0, 96)
	encoded = append(encoded, typeHash.Bytes()...)
	encoded = append(encoded, sourceHash.Bytes()...)
	encoded = append(encoded, agent.ConnectionID.Bytes()...)

	return crypto.Keccak256Hash(encoded)
}
