package signing

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ActionPreimage appends the nonce and vault marker to an action's msgpack bytes:
// encoded || nonce (8 bytes, big endian) || 0x00, or || 0x01 || vault address.
func ActionPreimage(encoded []byte, nonce uint64, vaultAddress *common.Address) []byte {
	size := len(encoded) + 8 + 1
	if vaultAddress != nil {
		size += common.AddressLength
	}
	preimage := make([]byte, 0, size)
	preimage = append(preimage, encoded...)
	preimage = binary.BigEndian.AppendUint64(preimage, nonce)
	if vaultAddress == nil {
		return append(preimage, 0x00)
	}
	preimage = append(preimage, 0x01)
	return append(preimage, vaultAddress.Bytes()...)
}

// ConnectionID is the keccak256 of the action preimage.
func ConnectionID(encoded []byte, nonce uint64, vaultAddress *common.Address) common.Hash {
	return crypto.Keccak256Hash(ActionPreimage(encoded, nonce, vaultAddress))
}
